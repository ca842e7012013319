// Package config loads application settings from a .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/abhisek/questland/internal/llm"
)

// EnvPrefix prefixes every variable the application reads.
const EnvPrefix = "QUESTLAND_"

// Config holds all application settings.
type Config struct {
	// DBPath is the journal database; empty means the XDG default.
	DBPath string `env:"DB"`

	// CatalogPath is a YAML quest catalog; empty means the built-in quests.
	CatalogPath string `env:"CATALOG"`

	// LogFile receives the application log; empty means next to the
	// database.
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	LLM llm.Config
}

// Load reads .env files (missing files are ignored; existing variables are
// never overridden) and parses the environment. With no files given it
// reads ./.env.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LLM.Discover()

	if err := cfg.LLM.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
