package tonectl

// Hardware collaborators. Register-level behaviour lives behind these
// narrow interfaces; the controller treats the peripherals as mechanical
// glue and concentrates its design in the scheduling and power logic.

// AnalogSource is the potentiometer input channel (10-bit, 0..1023).
type AnalogSource interface {
	// BeginSample starts one asynchronous conversion and returns
	// immediately. The reading arrives via the completion callback.
	BeginSample() error
	// OnSample installs the completion callback. The callback runs in the
	// source's completion context and must be O(1) and non-blocking.
	OnSample(fn func(raw uint16))
}

// ToneOutput is the buzzer PWM channel.
type ToneOutput interface {
	// SetTone writes the compare value that fixes the buzzer period.
	SetTone(compare uint16) error
}

// SerialTX is the byte-at-a-time transmit side of the serial link.
type SerialTX interface {
	// TXReady reports whether the channel can accept one byte.
	TXReady() bool
	WriteByte(b byte) error
}

// WakePin is the standby control input. Logic low means "enter or stay in
// low-power mode"; high means "run".
type WakePin interface {
	High() bool
	// Wake delivers one notification per pin-change event. The notification
	// carries no payload; its only job is to end a standby halt.
	Wake() <-chan struct{}
}

// Ticker is the fixed-period tick source driving the scheduler.
type Ticker interface {
	// Start begins delivering ticks to fn.
	Start(fn func())
	// Stop suspends tick delivery. Elapsed time while stopped is not
	// replayed on Resume.
	Stop()
	Resume()
}

// StatusLED is an optional run indicator (on while active, off in standby).
type StatusLED interface {
	Set(on bool)
}

// Resources bundles the peripherals a target's platform provider supplies.
// LED may be nil.
type Resources struct {
	Pot    AnalogSource
	Tone   ToneOutput
	Serial SerialTX
	Wake   WakePin
	Tick   Ticker
	LED    StatusLED
}
