package handler

import (
	"time"

	"samwad/backend/internal/models"
)

// stubStorage satisfies storage.Storage with overridable grievance
// writes; everything else is a no-op. The HTTP layer only ever touches
// the store through SaveGrievance.
type stubStorage struct {
	saveGrievance func(g *models.Grievance) error
}

func (s *stubStorage) SaveGrievance(g *models.Grievance) error {
	if s.saveGrievance != nil {
		return s.saveGrievance(g)
	}
	return nil
}

func (s *stubStorage) SaveSession(*models.SessionRecord) error { return nil }

func (s *stubStorage) GetSessionByID(string) (*models.SessionRecord, error) { return nil, nil }

func (s *stubStorage) AttachRating(string, string, int) error { return nil }

func (s *stubStorage) GetAllSessions() ([]models.SessionRecord, error) { return nil, nil }

func (s *stubStorage) GetSessionsByMobile(string) ([]models.SessionRecord, error) { return nil, nil }

func (s *stubStorage) GetSessionsByLocation(string, string, string) ([]models.SessionRecord, error) {
	return nil, nil
}

func (s *stubStorage) LastRatingsByMobile(string) (*int, *int, error) { return nil, nil, nil }

func (s *stubStorage) UpdateGrievance(string, *string, *string) error { return nil }

func (s *stubStorage) GetAllGrievances() ([]models.Grievance, error) { return nil, nil }

func (s *stubStorage) SaveLastOnline(time.Time) error { return nil }

func (s *stubStorage) LoadLastOnline() (*time.Time, error) { return nil, nil }

func (s *stubStorage) SaveWaitOverride(*int) error { return nil }

func (s *stubStorage) LoadWaitOverride() (*int, error) { return nil, nil }
