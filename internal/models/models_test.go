package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRecord_BeforeCreateMintsID(t *testing.T) {
	rec := &SessionRecord{}
	require.NoError(t, rec.BeforeCreate(nil))
	assert.NotEmpty(t, rec.SessionID)

	// An upstream-assigned ID is kept.
	rec = &SessionRecord{SessionID: "sess-1"}
	require.NoError(t, rec.BeforeCreate(nil))
	assert.Equal(t, "sess-1", rec.SessionID)
}

func TestGrievance_BeforeCreateDefaults(t *testing.T) {
	g := &Grievance{}
	require.NoError(t, g.BeforeCreate(nil))
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, GrievanceStatusPending, g.Status)

	g = &Grievance{ID: "g1", Status: GrievanceStatusResolved}
	require.NoError(t, g.BeforeCreate(nil))
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, GrievanceStatusResolved, g.Status)
}

func TestEvent_Envelope(t *testing.T) {
	ev := NewEvent("queue_update", QueueStatus{Position: 2, EstimatedWaitMinutes: 20})
	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"queue_update","data":{"position":2,"estimatedWaitMinutes":20}}`, string(raw))

	var back Event
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "queue_update", back.Name)

	var status QueueStatus
	require.NoError(t, json.Unmarshal(back.Data, &status))
	assert.Equal(t, 2, status.Position)
}
