package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Grievance statuses.
const (
	GrievanceStatusPending  = "pending"
	GrievanceStatusResolved = "resolved"
)

// Grievance is an asynchronous complaint filed when no live call is
// possible. Never deleted; the official may attach a remark and flip
// the status.
type Grievance struct {
	ID            string `gorm:"primaryKey" json:"id"`
	CitizenName   string `json:"citizenName"`
	CitizenMobile string `gorm:"index" json:"citizenMobile"`
	Email         string `json:"email,omitempty"`
	District      string `json:"district"`
	Block         string `json:"block"`
	Village       string `json:"village"`
	Message       string `gorm:"type:text" json:"message"`

	// FileURL duplicates the first entry of FileURLs for clients that
	// predate multi-file submissions.
	FileURL  string         `json:"fileUrl"`
	FileURLs pq.StringArray `gorm:"type:text[]" json:"fileUrls"`

	Timestamp time.Time `json:"timestamp"`
	Remark    string    `json:"remark,omitempty"`
	Status    string    `json:"status"`
}

// BeforeCreate mints an ID and applies the default status.
func (g *Grievance) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Status == "" {
		g.Status = GrievanceStatusPending
	}
	return nil
}
