package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRecord is the durable artifact of one completed call: a
// snapshot of the citizen's identity plus the full chat transcript.
// Created once at call termination; only the two rating fields are
// mutated afterwards, independently and last-write-wins.
type SessionRecord struct {
	SessionID     string `gorm:"primaryKey" json:"sessionId"`
	CitizenName   string `json:"citizenName"`
	CitizenMobile string `gorm:"index" json:"citizenMobile"`
	District      string `json:"district"`
	Block         string `json:"block"`
	Village       string `json:"village"`

	// StartTime equals EndTime: the system does not track a true
	// call-start instant, only the termination one.
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Messages []SessionMessage `gorm:"foreignKey:SessionID;references:SessionID" json:"messages"`

	CitizenRating *int `json:"citizenRating"`
	DMRating      *int `json:"dmRating"`

	CreatedAt time.Time `json:"-"`
}

// BeforeCreate mints a session ID when none was assigned upstream.
func (s *SessionRecord) BeforeCreate(tx *gorm.DB) error {
	if s.SessionID == "" {
		s.SessionID = uuid.New().String()
	}
	return nil
}

// SessionMessage is one transcript line of a SessionRecord.
type SessionMessage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	SessionID string    `gorm:"type:text;not null;index" json:"-"`
	Sender    string    `gorm:"type:text;not null" json:"sender"`
	Type      string    `gorm:"type:text;not null" json:"type"`
	Content   string    `gorm:"type:text" json:"content"`
	URL       string    `gorm:"type:text" json:"url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
