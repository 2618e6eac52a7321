package tonectl

import (
	"context"
	"time"

	"tonebox-go/types"
)

// Run drives the main loop until the context is cancelled: dispatch due
// tasks, then the power check, every iteration. The loop itself is not
// rate-limited; an idle pass pauses briefly so a host build does not spin.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.res.Tone.SetTone(InitialCompare); err != nil {
		println("tonectl: initial tone:", err.Error())
	}
	if c.res.LED != nil {
		c.res.LED.Set(true)
	}
	c.setState(types.PowerActive)

	c.res.Tick.Start(c.table.Advance)
	defer c.res.Tick.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ran := c.table.Dispatch()
		c.checkPower(ctx)
		if ran == 0 {
			time.Sleep(idlePause)
		}
	}
}
