// Package sched implements the time-triggered task table at the heart of
// the firmware. A fixed-capacity set of periodic jobs is advanced by a tick
// source and drained by the main loop: the tick context only marks work as
// due, and the dispatcher performs it. There is no runtime task creation or
// removal, no priorities and no preemption between tasks.
package sched

import (
	"sync"

	"tonebox-go/errcode"
)

// Action is the work bound to a task at registration. Actions run in the
// dispatcher's context and may block briefly; they must not call back into
// the table.
type Action func()

// TaskID labels a task for diagnostics. It has no scheduling meaning.
type TaskID uint8

// Ticks counts scheduler tick periods.
type Ticks = int32

type task struct {
	id       TaskID
	action   Action
	delay    Ticks
	interval Ticks
	pending  uint32
	occupied bool
	expired  bool // one-shot that has armed its only activation
}

// Table is the task registry shared between the tick context and the
// dispatch context. Capacity is fixed at construction and the table is
// never resized.
//
// All descriptor state is guarded by mu. The original single-core hardware
// design relied on interrupt priority instead of a lock; that assumption
// does not hold between goroutines, so the lock here is deliberate. It is
// never held across an action invocation.
type Table struct {
	mu    sync.Mutex
	slots []task
}

// NewTable returns a table with the given fixed capacity (minimum 1).
func NewTable(capacity int) *Table {
	if capacity < 1 {
		capacity = 1
	}
	return &Table{slots: make([]task, capacity)}
}

// Capacity reports the fixed slot count.
func (t *Table) Capacity() int { return len(t.slots) }

// Add binds fn to a slot. Registration is an init-time operation: it fails
// with an explicit error rather than overwrite an occupied slot.
//
// A task with zero delay is due immediately: its first activation is
// counted at registration (tick zero) and its countdown is armed for the
// following interval. Thereafter a task fires at ticks delay, delay+interval,
// delay+2*interval, ... An interval of zero makes the task one-shot.
func (t *Table) Add(slot int, id TaskID, delay, interval Ticks, fn Action) error {
	if slot < 0 || slot >= len(t.slots) {
		return errcode.SlotRange
	}
	if fn == nil {
		return errcode.NilAction
	}
	if delay < 0 {
		return errcode.NegativeDelay
	}
	if interval < 0 {
		return errcode.NegativeInterval
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.slots[slot].occupied {
		return errcode.SlotInUse
	}
	tk := task{id: id, action: fn, delay: delay, interval: interval, occupied: true}
	if delay == 0 {
		tk.pending = 1
		if interval == 0 {
			tk.expired = true
		} else {
			tk.delay = interval
		}
	}
	t.slots[slot] = tk
	return nil
}

// Advance counts one tick. Bookkeeping only: it decrements countdowns,
// marks due tasks pending and rearms periodic ones at the firing tick (so
// main-loop jitter cannot skew the schedule). It never runs actions and
// never blocks beyond the table lock.
func (t *Table) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied || s.expired {
			continue
		}
		if s.delay > 0 {
			s.delay--
		}
		if s.delay == 0 {
			s.pending++
			if s.interval == 0 {
				s.expired = true
			} else {
				s.delay = s.interval
			}
		}
	}
}

// Dispatch runs each occupied slot's action at most once, in ascending slot
// order, and returns the number of actions executed. A backlog (pending > 1
// after the main loop lagged) drains across successive passes, one
// activation per pass, so work is deferred but never dropped and never
// burst-executed. The pending count is decremented only after the action
// returns.
func (t *Table) Dispatch() int {
	ran := 0
	for i := range t.slots {
		t.mu.Lock()
		s := t.slots[i]
		t.mu.Unlock()
		if !s.occupied || s.pending == 0 {
			continue
		}

		s.action() // may block briefly; the table lock is not held

		t.mu.Lock()
		t.slots[i].pending--
		t.mu.Unlock()
		ran++
	}
	return ran
}

// Pending reports the undispatched activation count for a slot. Out-of-range
// slots report zero.
func (t *Table) Pending(slot int) uint32 {
	if slot < 0 || slot >= len(t.slots) {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.slots[slot].pending
}

// TaskAt reports the diagnostic label of an occupied slot.
func (t *Table) TaskAt(slot int) (TaskID, bool) {
	if slot < 0 || slot >= len(t.slots) {
		return 0, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.slots[slot].occupied {
		return 0, false
	}
	return t.slots[slot].id, true
}
