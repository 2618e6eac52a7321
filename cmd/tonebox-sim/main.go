//go:build !(rp2040 || rp2350)

// Command tonebox-sim runs the tone controller against simulated
// peripherals. Serial reports go to stdout in the same format the
// firmware writes, so the output can be piped into tonebox-monitor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tonebox-go/platform/sim"
	"tonebox-go/tonectl"
)

func main() {
	var (
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed for the simulated pot")
		start   = flag.Uint("start", 512, "initial raw pot reading (0..1023)")
		verbose = flag.Bool("verbose", false, "print tone compare changes to stderr")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tone := &sim.Tone{}
	if *verbose {
		tone.OnChange = func(compare uint16) {
			fmt.Fprintf(os.Stderr, "tone compare %d\n", compare)
		}
	}

	tick := sim.NewTicker(tonectl.TickPeriod)
	defer tick.Close()

	res := tonectl.Resources{
		Pot:    sim.NewWanderingPot(*seed, uint16(*start)),
		Tone:   tone,
		Serial: sim.NewSerial(os.Stdout),
		Wake:   sim.NewWakeButton(true),
		Tick:   tick,
		LED:    &sim.LED{},
	}

	ctl, err := tonectl.New(res)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tonebox-sim:", err)
		os.Exit(1)
	}
	if err := ctl.Run(ctx); err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, "tonebox-sim:", err)
		os.Exit(1)
	}
}
