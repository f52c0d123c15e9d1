package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvStorage  = "BREAKER_STORAGE"
	EnvDB       = "BREAKER_DB"
	EnvLogLevel = "BREAKER_LOG_LEVEL"
	EnvLogFile  = "BREAKER_LOG_FILE"
	EnvCheats   = "BREAKER_CHEATS"
)

// Load loads the configuration.
// Search order: customPath -> ~/.breaker/config.yaml -> ./configs/breaker.yaml -> embedded default
//
// Files are layered over the defaults, so a file only needs the keys it
// changes. An explicit customPath that cannot be read or parsed is an error;
// the other locations are skipped when unusable.
func Load(customPath string) (Config, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "breaker.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// defaults parses the embedded YAML, falling back to DefaultConfig.
func defaults() Config {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// ApplyEnv overrides settings from BREAKER_* variables read through getenv.
// Unset or empty variables leave the setting unchanged.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvStorage); v != "" {
		cfg.Storage.Driver = v
	}
	if v := getenv(EnvDB); v != "" {
		cfg.Storage.Path = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := getenv(EnvCheats); v != "" {
		cheats, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvCheats, err)
		}
		cfg.Rules.Cheats = cheats
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breaker", filename)
}
