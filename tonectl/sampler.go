package tonectl

import (
	"tonebox-go/types"
	"tonebox-go/x/mathx"
)

// runSample is the sampler task action: start one conversion and return.
// The result arrives later via onSampleDone.
func (c *Controller) runSample() {
	if err := c.res.Pot.BeginSample(); err != nil {
		println("tonectl: begin sample:", err.Error())
	}
}

// onSampleDone runs in the conversion-complete context: clamp, map, store,
// apply. No blocking work is allowed here.
func (c *Controller) onSampleDone(raw uint16) {
	freq := ClampFreq(raw)
	comp := CompareForFreq(freq)
	c.box.Store(types.Sample{Freq: freq, Compare: comp})
	if err := c.res.Tone.SetTone(comp); err != nil {
		println("tonectl: set tone:", err.Error())
	}
}

// ClampFreq restricts a raw 10-bit reading to the audible application range.
func ClampFreq(raw uint16) uint16 {
	return mathx.Clamp(raw, FreqMin, FreqMax)
}

// CompareForFreq maps a clamped frequency onto the compare range with
// integer truncation: compare = 124 + (2499-124)*freq/1000.
func CompareForFreq(freq uint16) uint16 {
	return mathx.MapU16(freq, 0, 1000, CompareMin, CompareMax)
}
