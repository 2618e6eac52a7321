// Package sim provides pure-Go stand-ins for the board peripherals so the
// firmware loop can run on a host: a scripted or wandering potentiometer, a
// recording tone output, an io.Writer-backed serial channel, a togglable
// wake pin and a pausable tick source. The host simulator and the firmware
// tests both build on these.
package sim

import (
	"io"
	"math/rand"
	"sync"
	"time"
)

// ---- Potentiometer ----

// Pot is a simulated 10-bit analog input. With no source configured it
// reads a fixed mid-scale value.
type Pot struct {
	mu   sync.Mutex
	cb   func(raw uint16)
	next func() uint16
}

// NewPot returns a pot that always reads raw.
func NewPot(raw uint16) *Pot {
	return &Pot{next: func() uint16 { return raw }}
}

// NewWanderingPot returns a pot whose reading random-walks over the 10-bit
// range, seeded for reproducibility.
func NewWanderingPot(seed int64, start uint16) *Pot {
	r := rand.New(rand.NewSource(seed))
	cur := int(start)
	return &Pot{next: func() uint16 {
		cur += r.Intn(129) - 64
		if cur < 0 {
			cur = 0
		}
		if cur > 1023 {
			cur = 1023
		}
		return uint16(cur)
	}}
}

func (p *Pot) OnSample(fn func(raw uint16)) {
	p.mu.Lock()
	p.cb = fn
	p.mu.Unlock()
}

// BeginSample completes synchronously; a host conversion has no latency
// worth simulating.
func (p *Pot) BeginSample() error {
	p.mu.Lock()
	cb, next := p.cb, p.next
	p.mu.Unlock()
	if cb != nil {
		cb(next())
	}
	return nil
}

// ---- Tone output ----

// Tone records the compare values applied to it. OnChange, if set, observes
// each write.
type Tone struct {
	mu       sync.Mutex
	last     uint16
	set      bool
	OnChange func(compare uint16)
}

func (t *Tone) SetTone(compare uint16) error {
	t.mu.Lock()
	t.last, t.set = compare, true
	fn := t.OnChange
	t.mu.Unlock()
	if fn != nil {
		fn(compare)
	}
	return nil
}

// Last returns the most recent compare value.
func (t *Tone) Last() (uint16, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last, t.set
}

// ---- Serial ----

// Serial adapts an io.Writer to the byte-wise transmit interface. It is
// always ready.
type Serial struct {
	mu sync.Mutex
	w  io.Writer
	b  [1]byte
}

func NewSerial(w io.Writer) *Serial { return &Serial{w: w} }

func (s *Serial) TXReady() bool { return true }

func (s *Serial) WriteByte(b byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b[0] = b
	_, err := s.w.Write(s.b[:])
	return err
}

// ---- Wake pin ----

// WakeButton is a togglable wake pin. Every level change delivers one
// notification, like a pin-change interrupt on both edges.
type WakeButton struct {
	mu    sync.Mutex
	level bool
	ch    chan struct{}
}

func NewWakeButton(high bool) *WakeButton {
	return &WakeButton{level: high, ch: make(chan struct{}, 1)}
}

func (w *WakeButton) High() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.level
}

func (w *WakeButton) Wake() <-chan struct{} { return w.ch }

// SetLevel drives the pin. A change fires the wake notification; setting
// the same level again is a no-op.
func (w *WakeButton) SetLevel(high bool) {
	w.mu.Lock()
	changed := w.level != high
	w.level = high
	w.mu.Unlock()
	if !changed {
		return
	}
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// ---- Ticker ----

// Ticker delivers fixed-period ticks from a goroutine. Stop pauses
// delivery without releasing the period timer; Resume restarts it. Elapsed
// time while stopped is not replayed.
type Ticker struct {
	period time.Duration

	mu      sync.Mutex
	fn      func()
	paused  bool
	done    chan struct{}
	started bool
}

func NewTicker(period time.Duration) *Ticker {
	if period <= 0 {
		period = time.Millisecond
	}
	return &Ticker{period: period}
}

func (t *Ticker) Start(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		t.fn = fn
		t.paused = false
		return
	}
	t.fn = fn
	t.paused = false
	t.started = true
	t.done = make(chan struct{})
	go t.run(t.done)
}

func (t *Ticker) run(done chan struct{}) {
	tk := time.NewTicker(t.period)
	defer tk.Stop()
	for {
		select {
		case <-done:
			return
		case <-tk.C:
			t.mu.Lock()
			fn, paused := t.fn, t.paused
			t.mu.Unlock()
			if fn != nil && !paused {
				fn()
			}
		}
	}
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	t.paused = true
	t.mu.Unlock()
}

func (t *Ticker) Resume() {
	t.mu.Lock()
	t.paused = false
	t.mu.Unlock()
}

// Close ends the delivery goroutine entirely.
func (t *Ticker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		close(t.done)
		t.started = false
		t.fn = nil
	}
}

// ---- LED ----

// LED records the run indicator state.
type LED struct {
	mu sync.Mutex
	on bool
}

func (l *LED) Set(on bool) {
	l.mu.Lock()
	l.on = on
	l.mu.Unlock()
}

func (l *LED) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
