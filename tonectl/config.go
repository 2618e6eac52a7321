package tonectl

import (
	"time"

	"tonebox-go/sched"
)

// Frequency and PWM compare ranges of the reference hardware. The compare
// bounds come from the buzzer timer equation clock/(2*prescaler*f)-1 with a
// 16 MHz clock and prescaler 64: 1000 Hz gives 124, 50 Hz gives 2499.
const (
	FreqMin uint16 = 50
	FreqMax uint16 = 1000

	CompareMin uint16 = 124
	CompareMax uint16 = 2499

	// InitialCompare is applied at boot, before the first conversion
	// completes (approximately 440 Hz).
	InitialCompare uint16 = 283
)

// TickPeriod is the scheduler tick.
const TickPeriod = 20 * time.Millisecond

// Task identities and the reference schedule: the sampler runs every 100
// ticks (2 s) starting immediately; the reporter runs every 100 ticks
// offset by 50 so the two never share a pass.
const (
	TaskSample sched.TaskID = 1
	TaskReport sched.TaskID = 2

	taskCapacity = 2

	sampleSlot                 = 0
	sampleDelay    sched.Ticks = 0
	sampleInterval sched.Ticks = 100
	reportSlot                 = 1
	reportDelay    sched.Ticks = 50
	reportInterval sched.Ticks = 100
)

// txReadyPolls bounds the per-byte transmit-ready wait. A stalled channel
// fails the line instead of hanging the loop.
const txReadyPolls = 10000

// idlePause keeps an idle main-loop pass from spinning a host core hot. It
// is well under TickPeriod so dispatch latency stays negligible.
const idlePause = time.Millisecond
