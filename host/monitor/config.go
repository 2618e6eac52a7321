package monitor

import (
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"
)

// Config is the monitor's YAML configuration.
type Config struct {
	Port     string `yaml:"port"`
	Baud     int    `yaml:"baud"`
	Database string `yaml:"database"`
	LogLevel string `yaml:"log_level"`

	// Expected frequency bounds; reports outside them raise a warning.
	MinHz uint16 `yaml:"min_hz"`
	MaxHz uint16 `yaml:"max_hz"`

	// WarnPerSec caps the rate of malformed/out-of-range warnings.
	WarnPerSec int `yaml:"warn_per_sec"`
}

// DefaultConfig matches the device's reference serial setup.
func DefaultConfig() Config {
	return Config{
		Port:       "/dev/ttyACM0",
		Baud:       9600,
		Database:   "tonebox.db",
		LogLevel:   "info",
		MinHz:      50,
		MaxHz:      1000,
		WarnPerSec: 1,
	}
}

// LoadConfig reads path over the defaults. A missing path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("monitor config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("monitor config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("monitor config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("baud must be positive, got %d", c.Baud)
	}
	if c.MinHz > c.MaxHz {
		return fmt.Errorf("min_hz %d exceeds max_hz %d", c.MinHz, c.MaxHz)
	}
	if c.WarnPerSec < 0 {
		return fmt.Errorf("warn_per_sec must not be negative, got %d", c.WarnPerSec)
	}
	return nil
}
