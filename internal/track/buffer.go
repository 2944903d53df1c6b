// Package track keeps the in-memory ground track: a bounded, ordered list of
// the most recent satellite fixes. The history lives only for the lifetime of
// the process.
package track

import (
	"sync"

	"iss-tracker/internal/types"
)

// Buffer is a bounded FIFO of positions. Appending past capacity evicts the
// oldest entry. A single poller goroutine writes while HTTP handlers read, so
// all access goes through the mutex.
type Buffer struct {
	mu       sync.Mutex
	points   []types.Position
	capacity int
}

// NewBuffer creates a Buffer holding at most capacity positions.
// Capacity must be at least 1.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		points:   make([]types.Position, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a position to the end of the track, evicting the oldest
// position if the buffer is full.
func (b *Buffer) Append(p types.Position) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.points) == b.capacity {
		copy(b.points, b.points[1:])
		b.points = b.points[:len(b.points)-1]
	}
	b.points = append(b.points, p)
}

// Snapshot returns a copy of the track in insertion order (oldest first).
func (b *Buffer) Snapshot() []types.Position {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]types.Position, len(b.points))
	copy(out, b.points)
	return out
}

// Latest returns the most recent position and whether the track holds any.
func (b *Buffer) Latest() (types.Position, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.points) == 0 {
		return types.Position{}, false
	}
	return b.points[len(b.points)-1], true
}

// Len returns the number of positions currently held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.points)
}

// Cap returns the configured capacity.
func (b *Buffer) Cap() int {
	return b.capacity
}
