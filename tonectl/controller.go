package tonectl

import (
	"sync/atomic"

	"tonebox-go/sched"
	"tonebox-go/types"
	"tonebox-go/x/mailbox"
)

// Controller owns the task table, the shared sample mailbox and the power
// state. It is constructed once at boot and drives the peripherals for the
// process lifetime; there are no ambient globals.
type Controller struct {
	res   Resources
	table *sched.Table
	box   mailbox.Box[types.Sample]
	state atomic.Uint32
}

// New wires the reference task set into a fresh controller. The table is
// populated here once and never modified afterwards.
func New(res Resources) (*Controller, error) {
	c := &Controller{res: res, table: sched.NewTable(taskCapacity)}
	if err := c.table.Add(sampleSlot, TaskSample, sampleDelay, sampleInterval, c.runSample); err != nil {
		return nil, err
	}
	if err := c.table.Add(reportSlot, TaskReport, reportDelay, reportInterval, c.runReport); err != nil {
		return nil, err
	}
	res.Pot.OnSample(c.onSampleDone)
	return c, nil
}

// Sample returns the latest clamped reading, if any conversion has
// completed yet.
func (c *Controller) Sample() (types.Sample, bool) { return c.box.Load() }

// PowerState reports the current run/standby state.
func (c *Controller) PowerState() types.PowerState {
	return types.PowerState(c.state.Load())
}

func (c *Controller) setState(s types.PowerState) { c.state.Store(uint32(s)) }

// Table exposes the task table for diagnostics.
func (c *Controller) Table() *sched.Table { return c.table }
