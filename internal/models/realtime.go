package models

import (
	"encoding/json"
	"time"
)

// Event is the wire envelope for the realtime protocol, in both
// directions: {"event": "...", "data": {...}}.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEvent builds an outbound envelope. Payloads are plain structs from
// this package; a marshal failure here is a programming error and yields
// an envelope with empty data rather than a dropped event.
func NewEvent(name string, payload any) Event {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{Name: name}
	}
	return Event{Name: name, Data: data}
}

// RegistrationAck confirms register_identity. The connection ID doubles
// as the client's user id for the life of the connection.
type RegistrationAck struct {
	ConnectionID string `json:"connectionId"`
}

// QueueStatus is the personal queue_update sent to a waiting citizen.
type QueueStatus struct {
	Position             int `json:"position"`
	EstimatedWaitMinutes int `json:"estimatedWaitMinutes"`
}

// QueueEntry is one row of the official's queue_update_official view,
// the citizen's identity enriched with their rating history.
type QueueEntry struct {
	Identity
	LastCitizenRating *int `json:"lastCitizenRating"`
	LastDMRating      *int `json:"lastDmRating"`
}

// StatusUpdate broadcasts the official's presence to every connection.
type StatusUpdate struct {
	Status       string     `json:"status"`
	LastOnlineAt *time.Time `json:"lastOnlineAt"`
}

// InviteRequest asks the hub to ring a queued citizen.
type InviteRequest struct {
	TargetConnectionID string `json:"targetConnectionId"`
}

// IncomingCall notifies a citizen that the official is calling.
type IncomingCall struct {
	From string `json:"from"`
}

// SignalingPayload carries an opaque offer/answer/candidate blob between
// two connections. The hub never looks inside Payload.
type SignalingPayload struct {
	Target  string          `json:"target,omitempty"`
	Payload json.RawMessage `json:"payload"`
	From    string          `json:"from,omitempty"`
}

// MeetingLink substitutes a hosted external meeting for built-in media.
type MeetingLink struct {
	Target string `json:"target,omitempty"`
	Link   string `json:"link"`
	From   string `json:"from,omitempty"`
}

// ChatMessage is a single message of a live call conversation.
type ChatMessage struct {
	Sender    string    `json:"sender"` // citizen | official
	Type      string    `json:"type"`   // text | file
	Content   string    `json:"content"`
	URL       string    `json:"url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatEnvelope addresses a ChatMessage to the other side of a call.
type ChatEnvelope struct {
	Target  string      `json:"target,omitempty"`
	Message ChatMessage `json:"message"`
}

// EndCall terminates the call with the named peer.
type EndCall struct {
	Target string `json:"target"`
}

// CallEnded tells both sides the call is over; the session ID is what
// submit_rating refers back to.
type CallEnded struct {
	SessionID string `json:"sessionId"`
}

// RatingSubmission attaches a 1-5 rating to a completed session.
type RatingSubmission struct {
	SessionID string `json:"sessionId"`
	Rating    int    `json:"rating"`
	Role      string `json:"role"`
}

// WaitOverride sets (or clears, with nil) the manual queue estimate.
type WaitOverride struct {
	Minutes *int `json:"minutes"`
}

// GrievanceEdit is the official's partial update of one grievance.
// Only non-nil fields are applied.
type GrievanceEdit struct {
	ID     string  `json:"id"`
	Remark *string `json:"remark"`
	Status *string `json:"status"`
}
