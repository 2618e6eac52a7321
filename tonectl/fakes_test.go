package tonectl

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// fakePot completes each conversion synchronously from a script of raw
// readings. Synchronous completion is a valid special case of the
// asynchronous contract and keeps tests deterministic.
type fakePot struct {
	mu     sync.Mutex
	cb     func(raw uint16)
	script []uint16
	next   int
	begins int
}

func (p *fakePot) OnSample(fn func(raw uint16)) { p.cb = fn }

func (p *fakePot) BeginSample() error {
	p.mu.Lock()
	p.begins++
	var raw uint16
	if len(p.script) > 0 {
		raw = p.script[p.next%len(p.script)]
		p.next++
	}
	cb := p.cb
	p.mu.Unlock()
	if cb != nil {
		cb(raw)
	}
	return nil
}

func (p *fakePot) beginCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.begins
}

type fakeTone struct {
	mu       sync.Mutex
	compares []uint16
}

func (t *fakeTone) SetTone(c uint16) error {
	t.mu.Lock()
	t.compares = append(t.compares, c)
	t.mu.Unlock()
	return nil
}

func (t *fakeTone) last() (uint16, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.compares) == 0 {
		return 0, false
	}
	return t.compares[len(t.compares)-1], true
}

// fakeSerial is always ready unless stalled.
type fakeSerial struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	stalled bool
}

func (s *fakeSerial) TXReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.stalled
}

func (s *fakeSerial) WriteByte(b byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.WriteByte(b)
	return nil
}

func (s *fakeSerial) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *fakeSerial) stall(v bool) {
	s.mu.Lock()
	s.stalled = v
	s.mu.Unlock()
}

// fakeWake is a togglable wake pin; every level change fires one
// notification, like a pin-change interrupt.
type fakeWake struct {
	level atomic.Bool
	ch    chan struct{}
}

func newFakeWake(high bool) *fakeWake {
	w := &fakeWake{ch: make(chan struct{}, 1)}
	w.level.Store(high)
	return w
}

func (w *fakeWake) High() bool            { return w.level.Load() }
func (w *fakeWake) Wake() <-chan struct{} { return w.ch }

func (w *fakeWake) setLevel(high bool) {
	if w.level.Swap(high) == high {
		return
	}
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// manualTicker delivers ticks only when the test asks for them, and only
// while running.
type manualTicker struct {
	mu      sync.Mutex
	fn      func()
	stopped bool
}

func (t *manualTicker) Start(fn func()) {
	t.mu.Lock()
	t.fn = fn
	t.stopped = false
	t.mu.Unlock()
}

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTicker) Resume() {
	t.mu.Lock()
	t.stopped = false
	t.mu.Unlock()
}

// tick delivers n ticks; ticks while stopped are discarded, matching a
// halted tick source.
func (t *manualTicker) tick(n int) {
	for i := 0; i < n; i++ {
		t.mu.Lock()
		fn, stopped := t.fn, t.stopped
		t.mu.Unlock()
		if fn != nil && !stopped {
			fn()
		}
	}
}

func (t *manualTicker) running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fn != nil && !t.stopped
}

func testResources() (Resources, *fakePot, *fakeTone, *fakeSerial, *fakeWake, *manualTicker) {
	pot := &fakePot{script: []uint16{500}}
	tone := &fakeTone{}
	ser := &fakeSerial{}
	wake := newFakeWake(true)
	tick := &manualTicker{}
	res := Resources{Pot: pot, Tone: tone, Serial: ser, Wake: wake, Tick: tick}
	return res, pot, tone, ser, wake, tick
}
