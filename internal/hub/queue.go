package hub

import "samwad/backend/internal/config"

// Queue is the single ordered waiting line feeding the official.
// Strict FIFO by join time; the official may pull any entry, not just
// the head. All access happens from the hub's run goroutine.
type Queue struct {
	order    []string
	override *int // manual wait estimate, applies uniformly to every position
}

func NewQueue() *Queue {
	return &Queue{}
}

// Join appends the connection unless it is already queued. Returns the
// 1-indexed position either way, and whether the entry was already
// present.
func (q *Queue) Join(connID string) (position int, already bool) {
	if pos := q.Position(connID); pos > 0 {
		return pos, true
	}
	q.order = append(q.order, connID)
	return len(q.order), false
}

// Remove deletes the connection from the line, if present. Used for
// voluntary leave, disconnect, and the official pulling a citizen into
// a call.
func (q *Queue) Remove(connID string) bool {
	for i, id := range q.order {
		if id == connID {
			q.order = append(q.order[:i], q.order[i+1:]...)
			return true
		}
	}
	return false
}

// Position returns the 1-indexed position, or 0 when absent. Always
// recomputed from the current order.
func (q *Queue) Position(connID string) int {
	for i, id := range q.order {
		if id == connID {
			return i + 1
		}
	}
	return 0
}

// Entries returns the queued connection IDs in join order.
func (q *Queue) Entries() []string {
	out := make([]string, len(q.order))
	copy(out, q.order)
	return out
}

func (q *Queue) Len() int { return len(q.order) }

// SetOverride sets or clears (nil) the manual wait estimate.
func (q *Queue) SetOverride(minutes *int) {
	q.override = minutes
}

func (q *Queue) Override() *int { return q.override }

// EstimatedWait returns the wait estimate in minutes for a 1-indexed
// position: the manual override when set, else position × 10.
func (q *Queue) EstimatedWait(position int) int {
	if q.override != nil {
		return *q.override
	}
	return position * config.WaitMinutesPerPosition
}
