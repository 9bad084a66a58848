package hub

import (
	"strings"

	"samwad/backend/internal/models"
)

// pairKey normalises two connection IDs into an order-independent key
// for the transcript buffer.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return strings.Join([]string{a, b}, "-")
}

// Coordinator buffers the in-flight chat transcript of each active call
// pair. A buffer is created implicitly on the first message and removed
// exactly once, at termination, whether or not the session is persisted
// afterwards.
type Coordinator struct {
	transcripts map[string][]models.ChatMessage
}

func NewCoordinator() *Coordinator {
	return &Coordinator{transcripts: make(map[string][]models.ChatMessage)}
}

// Append adds a relayed message to the pair's transcript.
func (c *Coordinator) Append(a, b string, msg models.ChatMessage) {
	key := pairKey(a, b)
	c.transcripts[key] = append(c.transcripts[key], msg)
}

// Take returns the pair's transcript and removes the buffer. Safe to
// call for pairs that never exchanged a message.
func (c *Coordinator) Take(a, b string) []models.ChatMessage {
	key := pairKey(a, b)
	msgs := c.transcripts[key]
	delete(c.transcripts, key)
	return msgs
}

// Buffered returns the number of buffered messages for a pair.
func (c *Coordinator) Buffered(a, b string) int {
	return len(c.transcripts[pairKey(a, b)])
}
