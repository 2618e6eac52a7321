package tonectl

import (
	"context"

	"tonebox-go/types"
)

// checkPower is the per-iteration wake-pin level check. While the pin is
// low the controller holds in standby: tick delivery is suspended, so the
// schedule is frozen and no missed ticks are fabricated on resume. The wake
// notification carries no application logic; control simply returns to the
// main loop, which re-enters standby on its next pass if the pin is still
// low. That repeated re-entry on a noisy pin matches the original intent;
// there is no debouncing.
func (c *Controller) checkPower(ctx context.Context) {
	if c.res.Wake.High() {
		return
	}

	c.res.Tick.Stop()
	if c.res.LED != nil {
		c.res.LED.Set(false)
	}
	c.setState(types.PowerStandby)
	println("tonectl: standby")

	select {
	case <-c.res.Wake.Wake():
	case <-ctx.Done():
	}

	c.setState(types.PowerActive)
	if c.res.LED != nil {
		c.res.LED.Set(true)
	}
	c.res.Tick.Resume()
	println("tonectl: wake")
}
