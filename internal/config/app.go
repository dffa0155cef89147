// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds the harness configuration loaded from environment variables.
type AppConfig struct {
	FixturesDir  string `env:"SNAPCHECK_FIXTURES_DIR" envDefault:"fixtures"`
	ResultsDir   string `env:"SNAPCHECK_RESULTS_DIR" envDefault:"results"`
	SnapshotPath string `env:"SNAPCHECK_SNAPSHOT" envDefault:"snapshot.json"`
	BindingsPath string `env:"SNAPCHECK_BINDINGS" envDefault:"bindings.yaml"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Parse builds an AppConfig from the current environment only.
func Parse() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// LoadEnvFile loads the specified environment file. A missing default .env is not an error.
func LoadEnvFile(file string) error {
	if file == "" {
		file = DefaultEnvFile
	}

	if err := godotenv.Load(file); err != nil {
		if file == DefaultEnvFile && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}

func (c *AppConfig) String() string {
	bindingsDisplay := c.BindingsPath
	if _, err := os.Stat(c.BindingsPath); err != nil {
		bindingsDisplay += " (not found)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Fixtures Dir:  %s
Results Dir:   %s
Snapshot:      %s
Key Bindings:  %s
Log Level:     %s`,
		c.FixturesDir,
		c.ResultsDir,
		c.SnapshotPath,
		bindingsDisplay,
		c.LogLevel,
	)
}
