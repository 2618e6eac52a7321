//go:build rp2040

package main

import (
	"context"
	"time"

	"tonebox-go/platform"
	"tonebox-go/tonectl"
	"tonebox-go/types"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	res := platform.Resources(types.DefaultConfig())
	ctl, err := tonectl.New(res)
	if err != nil {
		println("pico-tone: setup:", err.Error())
		for {
			time.Sleep(time.Second)
		}
	}

	if err := ctl.Run(context.Background()); err != nil {
		println("pico-tone: run:", err.Error())
	}
	for {
		time.Sleep(time.Second)
	}
}
