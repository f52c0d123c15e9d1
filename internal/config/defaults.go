package config

import (
	_ "embed"
)

//go:embed defaults/breaker.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the embedded
// file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Timing: TimingConfig{
			TickMs:       10,
			DebounceMs:   200,
			FeedbackMs:   1500,
			CheatHoldMs:  3000,
			HoldWindowMs: 700,
		},
		Rules: RulesConfig{
			Cheats:        true,
			LiveCountdown: false,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "~/.breaker/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.breaker/breaker.log",
		},
	}
}
