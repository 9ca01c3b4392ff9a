// Package trail keeps a bounded, insertion-ordered history of positions.
package trail

import "github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"

// DefaultCapacity is the number of positions kept when no capacity is given.
const DefaultCapacity = 25

// Trail is a fixed-capacity FIFO of positions backed by a ring buffer.
// Pushing onto a full trail evicts the oldest entry.
type Trail struct {
	buf  []geometry.Vector2D
	head int // next write index
	size int
}

// New creates an empty Trail. A capacity <= 0 falls back to DefaultCapacity.
func New(capacity int) *Trail {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Trail{buf: make([]geometry.Vector2D, capacity)}
}

// Push appends p, dropping the oldest entry when the trail is full.
func (t *Trail) Push(p geometry.Vector2D) {
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
	if t.size < len(t.buf) {
		t.size++
	}
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return t.size
}

// Cap returns the maximum number of stored positions.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// At returns the i-th position, 0 being the oldest.
func (t *Trail) At(i int) geometry.Vector2D {
	start := (t.head - t.size + len(t.buf)) % len(t.buf)
	return t.buf[(start+i)%len(t.buf)]
}

// Points returns a copy of the stored positions, oldest first.
func (t *Trail) Points() []geometry.Vector2D {
	out := make([]geometry.Vector2D, t.size)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Clear empties the trail, keeping its capacity.
func (t *Trail) Clear() {
	t.head = 0
	t.size = 0
}

// Alpha is the opacity of the i-th entry of a trail holding n entries:
// i/n, so the oldest is transparent and the newest almost opaque.
func Alpha(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) / float64(n)
}
