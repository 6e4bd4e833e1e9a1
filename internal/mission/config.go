package mission

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the mission configuration.
type Config struct {
	Countdown struct {
		StartFrom int `yaml:"start_from"`
		TickMS    int `yaml:"tick_ms"`
	} `yaml:"countdown"`
}

// DefaultConfig returns the stock launch procedure.
func DefaultConfig() Config {
	var cfg Config
	cfg.Countdown.StartFrom = DefaultStartFrom
	cfg.Countdown.TickMS = int(DefaultTick / time.Millisecond)
	return cfg
}

// Tick returns the configured countdown pause as a duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.Countdown.TickMS) * time.Millisecond
}

// LoadConfig reads YAML configuration from a path. If path is empty it
// resolves $XDG_CONFIG_HOME/majortom/config.yaml, falling back to
// ~/.config/majortom/config.yaml, and a missing file yields the defaults.
// An explicitly passed path must exist. Keys absent from the file keep
// their default values, so a partial file is fine.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
		path = filepath.Join(base, "majortom", "config.yaml")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		// No config file is not fatal
		return applyEnv(cfg), nil
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return applyEnv(cfg), nil
}

// applyEnv merges environment overrides on top of the loaded values.
// MAJORTOM_TICK_MS replaces the countdown pause; invalid values are ignored.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("MAJORTOM_TICK_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.Countdown.TickMS = ms
		}
	}
	return cfg
}
