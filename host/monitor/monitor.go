// Package monitor reads the firmware's serial reports on a host
// machine, validates them and keeps a small history for inspection.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Monitor consumes report lines from one reader.
type Monitor struct {
	cfg  Config
	log  zerolog.Logger
	hist *History
	warn *rate.Limiter
}

// New builds a monitor. hist may be nil to disable recording.
func New(cfg Config, log zerolog.Logger, hist *History) *Monitor {
	return &Monitor{
		cfg:  cfg,
		log:  log,
		hist: hist,
		warn: rate.NewLimiter(rate.Limit(cfg.WarnPerSec), 1),
	}
}

// Run reads lines from r until EOF, a read error or ctx cancellation.
// Malformed and out-of-range lines are logged (rate limited) and
// skipped; they never stop the loop.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Scanner strips \n; the device terminates with \r\n.
		line := strings.TrimSuffix(sc.Text(), "\r")
		hz, err := ParseLine(line)
		if err != nil {
			m.warnf(err, line)
			continue
		}
		m.handle(ctx, hz)
	}
	if err := sc.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return ctx.Err()
}

func (m *Monitor) handle(ctx context.Context, hz uint16) {
	if hz < m.cfg.MinHz || hz > m.cfg.MaxHz {
		if m.warn.Allow() {
			m.log.Warn().Uint16("hz", hz).
				Uint16("min", m.cfg.MinHz).Uint16("max", m.cfg.MaxHz).
				Msg("frequency out of range")
		}
	} else {
		m.log.Debug().Uint16("hz", hz).Msg("report")
	}
	if m.hist != nil {
		if err := m.hist.Record(ctx, time.Now(), hz); err != nil && !errors.Is(err, context.Canceled) {
			m.log.Error().Err(err).Msg("record failed")
		}
	}
}

func (m *Monitor) warnf(err error, raw string) {
	if !m.warn.Allow() {
		return
	}
	m.log.Warn().Err(err).Str("line", raw).Msg("bad report line")
}
