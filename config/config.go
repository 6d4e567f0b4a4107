/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Log formats understood by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config controls the ambient behaviour of the command. None of it changes
// how definitions are filtered.
type Config struct {
	LogLevel  string `env:"SWAGGERFILTER_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"SWAGGERFILTER_LOG_FORMAT" envDefault:"text"`
}

// Load reads the configuration from the process environment. When envFile is
// set, its values are read with godotenv and take precedence; the process
// environment itself is never modified.
func Load(envFile string) (Config, error) {
	environ := env.ToMap(os.Environ())

	if envFile != "" {
		overlay, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		for k, v := range overlay {
			environ[k] = v
		}
	}

	return LoadFrom(environ)
}

// LoadFrom parses the configuration from the given variables.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the level and format are known.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid SWAGGERFILTER_LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid SWAGGERFILTER_LOG_FORMAT %q: expected %q or %q", c.LogFormat, FormatText, FormatJSON)
	}
	return nil
}
