package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `env:"ENIGMA_HOME"`                        // profile directory, default $HOME/.enigma
	LogLevel  string `env:"ENIGMA_LOG_LEVEL" envDefault:"warn"` // debug, info, warn, error
	LogFormat string `env:"ENIGMA_LOG_FORMAT" envDefault:"text"` // text or json
}

// LoadConfig reads Config from the environment and fills in the default home.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home: %w", err)
		}
		cfg.Home = filepath.Join(dir, ".enigma")
	}
	return cfg, nil
}
