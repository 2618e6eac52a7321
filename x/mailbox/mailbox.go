// Package mailbox provides a single-slot latest-value cell for handing one
// datum from an interrupt-style producer to cooperative consumers. Writes
// overwrite; reads observe the latest value without consuming it. This
// replaces the bare shared globals the no-lock single-core design relied
// on: on a target with real goroutine concurrency the slot must be guarded.
package mailbox

import "sync"

// Box holds the most recent value stored in it. The zero Box is empty and
// ready to use.
type Box[T any] struct {
	mu  sync.Mutex
	v   T
	set bool
}

// Store overwrites the slot with v.
func (b *Box[T]) Store(v T) {
	b.mu.Lock()
	b.v, b.set = v, true
	b.mu.Unlock()
}

// Load returns the latest value and whether the slot has ever been written.
func (b *Box[T]) Load() (T, bool) {
	b.mu.Lock()
	v, ok := b.v, b.set
	b.mu.Unlock()
	return v, ok
}
