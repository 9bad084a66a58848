package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue()

	for _, id := range []string{"a", "b", "c"} {
		pos, already := q.Join(id)
		assert.False(t, already)
		assert.Equal(t, q.Len(), pos)
	}

	assert.Equal(t, []string{"a", "b", "c"}, q.Entries())
	assert.Equal(t, 1, q.Position("a"))
	assert.Equal(t, 3, q.Position("c"))
}

func TestQueue_DuplicateJoinIsIdempotent(t *testing.T) {
	q := NewQueue()
	q.Join("a")
	q.Join("b")

	pos, already := q.Join("a")
	assert.True(t, already)
	assert.Equal(t, 1, pos, "duplicate join must report the existing position")
	assert.Equal(t, 2, q.Len(), "duplicate join must not grow the queue")
	assert.Equal(t, []string{"a", "b"}, q.Entries(), "duplicate join must not reorder")
}

func TestQueue_RemoveArbitraryEntry(t *testing.T) {
	q := NewQueue()
	q.Join("a")
	q.Join("b")
	q.Join("c")

	// The official may pull any queued citizen, not only the head.
	assert.True(t, q.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, q.Entries())
	assert.Equal(t, 2, q.Position("c"), "positions recompute after removal")

	assert.False(t, q.Remove("b"), "removing an absent entry is a no-op")
}

func TestQueue_EstimatedWait(t *testing.T) {
	q := NewQueue()

	assert.Equal(t, 10, q.EstimatedWait(1))
	assert.Equal(t, 30, q.EstimatedWait(3))

	override := 5
	q.SetOverride(&override)
	assert.Equal(t, 5, q.EstimatedWait(1))
	assert.Equal(t, 5, q.EstimatedWait(3), "override applies uniformly to every position")

	q.SetOverride(nil)
	assert.Equal(t, 30, q.EstimatedWait(3))
}

func TestQueue_PositionAbsent(t *testing.T) {
	q := NewQueue()
	assert.Equal(t, 0, q.Position("ghost"))
}
