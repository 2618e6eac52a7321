// Package serial opens the device's serial link from the host side.
package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// Config selects the port to open.
type Config struct {
	Device      string // e.g. /dev/ttyACM0
	Baud        int
	ReadTimeout time.Duration // zero blocks indefinitely
}

// Port is an open serial connection.
type Port struct {
	p *serial.Port
}

// Open opens the configured port.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("serial: device is required")
	}
	if cfg.Baud <= 0 {
		return nil, fmt.Errorf("serial: baud must be positive, got %d", cfg.Baud)
	}
	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Device, err)
	}
	return &Port{p: p}, nil
}

func (p *Port) Read(b []byte) (int, error)  { return p.p.Read(b) }
func (p *Port) Write(b []byte) (int, error) { return p.p.Write(b) }

func (p *Port) Close() error {
	if p == nil || p.p == nil {
		return nil
	}
	return p.p.Close()
}
