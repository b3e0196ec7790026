package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-level options that may come from the environment.
// CLI flags default to these values, so flags still win when given.
type Settings struct {
	FPS        int    `env:"EGGDROP_FPS"        envDefault:"60"`
	Seed       int64  `env:"EGGDROP_SEED"       envDefault:"0"`
	DBPath     string `env:"EGGDROP_DB"         envDefault:"~/.eggdrop/replays.db"`
	ConfigPath string `env:"EGGDROP_CONFIG"`
	Difficulty string `env:"EGGDROP_DIFFICULTY"`
	LogFile    string `env:"EGGDROP_LOG_FILE"`
	LogLevel   string `env:"EGGDROP_LOG_LEVEL"  envDefault:"info"`
	SSHAddr    string `env:"EGGDROP_SSH_ADDR"   envDefault:":23234"`
}

// DefaultSettings returns the settings used when the environment is empty.
func DefaultSettings() Settings {
	return Settings{
		FPS:      60,
		DBPath:   "~/.eggdrop/replays.db",
		LogLevel: "info",
		SSHAddr:  ":23234",
	}
}

// LoadSettings reads Settings from environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParsePreset(s.Difficulty); err != nil {
		return DefaultSettings(), fmt.Errorf("parse env: EGGDROP_DIFFICULTY: %w", err)
	}
	if s.FPS <= 0 {
		return DefaultSettings(), fmt.Errorf("parse env: EGGDROP_FPS must be positive, got %d", s.FPS)
	}
	return s, nil
}
