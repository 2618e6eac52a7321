//go:build !(rp2040 || rp2350)

package platform

import (
	"os"
	"time"

	"tonebox-go/platform/sim"
	"tonebox-go/tonectl"
	"tonebox-go/types"
)

// Resources returns simulated peripherals: a wandering potentiometer
// seeded from the clock, serial output on stdout and a wake pin held high.
func Resources(cfg types.Config) tonectl.Resources {
	return tonectl.Resources{
		Pot:    sim.NewWanderingPot(time.Now().UnixNano(), 512),
		Tone:   &sim.Tone{},
		Serial: sim.NewSerial(os.Stdout),
		Wake:   sim.NewWakeButton(true),
		Tick:   sim.NewTicker(tonectl.TickPeriod),
		LED:    &sim.LED{},
	}
}
