package hub

import "samwad/backend/internal/models"

// Client is one live connection as seen by the hub. It abstracts the
// transport so the hub and its tests never touch a real socket.
type Client interface {
	// ConnID returns the connection identifier minted at upgrade time.
	// It is stable only for the lifetime of the connection.
	ConnID() string

	// GetSendChannel returns the channel the hub writes outbound events
	// to. The client's write pump drains it.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()

	// Close shuts down the outbound channel and with it the write pump.
	Close()
}
