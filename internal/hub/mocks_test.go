package hub_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"samwad/backend/internal/hub"
	"samwad/backend/internal/models"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveSession(session *models.SessionRecord) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockStorage) GetSessionByID(id string) (*models.SessionRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionRecord), args.Error(1)
}

func (m *MockStorage) AttachRating(sessionID, role string, rating int) error {
	args := m.Called(sessionID, role, rating)
	return args.Error(0)
}

func (m *MockStorage) GetAllSessions() ([]models.SessionRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionRecord), args.Error(1)
}

func (m *MockStorage) GetSessionsByMobile(mobile string) ([]models.SessionRecord, error) {
	args := m.Called(mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionRecord), args.Error(1)
}

func (m *MockStorage) GetSessionsByLocation(district, block, village string) ([]models.SessionRecord, error) {
	args := m.Called(district, block, village)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionRecord), args.Error(1)
}

func (m *MockStorage) LastRatingsByMobile(mobile string) (*int, *int, error) {
	args := m.Called(mobile)
	var citizen, official *int
	if args.Get(0) != nil {
		citizen = args.Get(0).(*int)
	}
	if args.Get(1) != nil {
		official = args.Get(1).(*int)
	}
	return citizen, official, args.Error(2)
}

func (m *MockStorage) SaveGrievance(g *models.Grievance) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockStorage) UpdateGrievance(id string, remark, status *string) error {
	args := m.Called(id, remark, status)
	return args.Error(0)
}

func (m *MockStorage) GetAllGrievances() ([]models.Grievance, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Grievance), args.Error(1)
}

func (m *MockStorage) SaveLastOnline(t time.Time) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockStorage) LoadLastOnline() (*time.Time, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockStorage) SaveWaitOverride(minutes *int) error {
	args := m.Called(minutes)
	return args.Error(0)
}

func (m *MockStorage) LoadWaitOverride() (*int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

// mockNotifier records offline grievance notifications.
type mockNotifier struct {
	ch chan models.Grievance
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{ch: make(chan models.Grievance, 4)}
}

func (n *mockNotifier) GrievanceFiled(g models.Grievance) {
	n.ch <- g
}

// mockClient is a buffered stand-in for a live connection.
type mockClient struct {
	id   string
	Recv chan models.Event
}

func newMockClient(id string) *mockClient {
	return &mockClient{id: id, Recv: make(chan models.Event, 32)}
}

func (c *mockClient) ConnID() string                      { return c.id }
func (c *mockClient) GetSendChannel() chan<- models.Event { return c.Recv }
func (c *mockClient) Run()                                {}
func (c *mockClient) Close()                              {}

// newHub wires a hub to a mock storage with the expectations every test
// needs (state restore at construction, best-effort state writes).
func newHub(t *testing.T) (*hub.Hub, *MockStorage) {
	t.Helper()
	s := new(MockStorage)
	s.On("LoadLastOnline").Return(nil, nil)
	s.On("LoadWaitOverride").Return(nil, nil)
	s.On("SaveLastOnline", mock.AnythingOfType("time.Time")).Return(nil)
	s.On("SaveWaitOverride", mock.Anything).Return(nil)
	s.On("LastRatingsByMobile", mock.AnythingOfType("string")).Return(nil, nil, nil)
	return hub.NewHub(s), s
}

// event builds an inbound envelope from a payload struct.
func event(t *testing.T, name string, payload any) models.Event {
	t.Helper()
	if payload == nil {
		return models.Event{Name: name}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", name, err)
	}
	return models.Event{Name: name, Data: data}
}

// waitEvent drains a client's channel until an event with the given
// name arrives, failing the test after a short timeout.
func waitEvent(t *testing.T, c *mockClient, name string) models.Event {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-c.Recv:
			if ev.Name == name {
				return ev
			}
		case <-deadline:
			t.Fatalf("client %s never received %q", c.id, name)
			return models.Event{}
		}
	}
}

// payload decodes an event's data into v.
func payload(t *testing.T, ev models.Event, v any) {
	t.Helper()
	if err := json.Unmarshal(ev.Data, v); err != nil {
		t.Fatalf("decode %s payload: %v", ev.Name, err)
	}
}
