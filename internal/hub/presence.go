package hub

import (
	"time"

	"samwad/backend/internal/models"
)

// Presence states of the single official.
const (
	StatusOffline = "offline"
	StatusOnline  = "online"
	StatusBusy    = "busy"
)

// Presence tracks the official's availability. Offline iff no active
// official connection exists; busy does not block further invites.
type Presence struct {
	status       string
	lastOnlineAt *time.Time
}

func NewPresence() *Presence {
	return &Presence{status: StatusOffline}
}

func (p *Presence) Status() string { return p.status }

func (p *Presence) LastOnlineAt() *time.Time { return p.lastOnlineAt }

// SetOnline marks the official available and refreshes last-seen.
func (p *Presence) SetOnline(now time.Time) {
	p.status = StatusOnline
	p.lastOnlineAt = &now
}

// SetBusy marks the official in a call. Last-seen is untouched.
func (p *Presence) SetBusy() {
	p.status = StatusBusy
}

// SetOffline records the disconnect instant as last-seen.
func (p *Presence) SetOffline(now time.Time) {
	p.status = StatusOffline
	p.lastOnlineAt = &now
}

// RestoreLastOnline seeds last-seen from durable state at startup
// without changing the status.
func (p *Presence) RestoreLastOnline(t *time.Time) {
	p.lastOnlineAt = t
}

// Snapshot is the payload of every status_update broadcast.
func (p *Presence) Snapshot() models.StatusUpdate {
	return models.StatusUpdate{Status: p.status, LastOnlineAt: p.lastOnlineAt}
}
