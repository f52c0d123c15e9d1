// Package config provides YAML-based configuration loading for Binary
// Breaker, with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
)

// Config is the complete runtime configuration.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Rules   RulesConfig   `yaml:"rules"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// TimingConfig holds every timing constant in milliseconds.
type TimingConfig struct {
	TickMs       int `yaml:"tick_ms"`
	DebounceMs   int `yaml:"debounce_ms"`
	FeedbackMs   int `yaml:"feedback_ms"`
	CheatHoldMs  int `yaml:"cheat_hold_ms"`
	HoldWindowMs int `yaml:"hold_window_ms"` // key repeat gap still counted as held
}

// RulesConfig toggles optional game behaviour.
type RulesConfig struct {
	Cheats        bool `yaml:"cheats"`
	LiveCountdown bool `yaml:"live_countdown"`
}

// StorageConfig selects the high-score backend.
type StorageConfig struct {
	Driver string `yaml:"driver"` // "sqlite", "file" or "memory"
	Path   string `yaml:"path"`
}

// LogConfig controls the logger built by the CLI.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr
}

// Debounce returns the button debounce window.
func (t TimingConfig) Debounce() time.Duration {
	return ms(t.DebounceMs)
}

// HoldWindow returns how long a repeating key stays held after its last event.
func (t TimingConfig) HoldWindow() time.Duration {
	return ms(t.HoldWindowMs)
}

// BreakerRules converts the configuration to controller rules.
func (c Config) BreakerRules() breaker.Rules {
	return breaker.Rules{
		TickInterval:     ms(c.Timing.TickMs),
		FeedbackDuration: ms(c.Timing.FeedbackMs),
		CheatHold:        ms(c.Timing.CheatHoldMs),
		Cheats:           c.Rules.Cheats,
		LiveCountdown:    c.Rules.LiveCountdown,
	}
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value int
	}{
		{"timing.tick_ms", c.Timing.TickMs},
		{"timing.feedback_ms", c.Timing.FeedbackMs},
		{"timing.cheat_hold_ms", c.Timing.CheatHoldMs},
		{"timing.hold_window_ms", c.Timing.HoldWindowMs},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %d", p.name, p.value))
		}
	}
	if c.Timing.DebounceMs < 0 {
		errs = append(errs, fmt.Errorf("config: timing.debounce_ms must not be negative, got %d", c.Timing.DebounceMs))
	}

	switch c.Storage.Driver {
	case "sqlite", "file":
		if c.Storage.Path == "" {
			errs = append(errs, fmt.Errorf("config: storage.path is required for driver %q", c.Storage.Driver))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("config: log.level: %w", err))
	}

	return errors.Join(errs...)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
