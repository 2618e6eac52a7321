//go:build !(rp2040 || rp2350)

// Command tonebox-monitor reads frequency reports from the device's
// serial port, logs them and keeps a sqlite history.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"tonebox-go/host/monitor"
	"tonebox-go/host/serial"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg, err := monitor.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hist, err := monitor.OpenHistory(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open history")
	}
	defer hist.Close()

	// Block on reads; the goroutine below closes the port to unblock.
	port, err := serial.Open(serial.Config{
		Device: cfg.Port,
		Baud:   cfg.Baud,
	})
	if err != nil {
		log.Fatal().Err(err).Str("port", cfg.Port).Msg("open serial port")
	}
	defer port.Close()

	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	log.Info().Str("port", cfg.Port).Int("baud", cfg.Baud).Msg("listening")

	m := monitor.New(cfg, log, hist)
	if err := m.Run(ctx, port); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("monitor stopped")
	}
	log.Info().Msg("bye")
}
