// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/financelab/internal/selection"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG path.
	DBPath string

	// ContentPath is a content JSON file. Empty means the embedded catalog.
	ContentPath string

	// LogFile receives JSON logs. Empty disables logging.
	LogFile string

	// LogLevel is one of debug, info, warn, error. Default: "info".
	LogLevel string

	// SessionMin and SessionMax bound the random session length. Default: 7 and 8.
	SessionMin int
	SessionMax int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	sel := selection.DefaultConfig()
	return Config{
		LogLevel:   "info",
		SessionMin: sel.MinLength,
		SessionMax: sel.MaxLength,
	}
}

// Load reads a .env file from the working directory if one exists and then
// builds a Config from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = getenvDefault("FINLAB_DB", cfg.DBPath)
	cfg.ContentPath = getenvDefault("FINLAB_CONTENT", cfg.ContentPath)
	cfg.LogFile = getenvDefault("FINLAB_LOG", cfg.LogFile)
	cfg.LogLevel = strings.ToLower(getenvDefault("FINLAB_LOG_LEVEL", cfg.LogLevel))

	var err error
	if cfg.SessionMin, err = getenvInt("FINLAB_SESSION_MIN", cfg.SessionMin); err != nil {
		return Config{}, err
	}
	if cfg.SessionMax, err = getenvInt("FINLAB_SESSION_MAX", cfg.SessionMax); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("FINLAB_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	if c.SessionMin < 1 {
		return fmt.Errorf("FINLAB_SESSION_MIN must be at least 1, got %d", c.SessionMin)
	}
	if c.SessionMax < c.SessionMin {
		return fmt.Errorf("FINLAB_SESSION_MAX (%d) must not be below FINLAB_SESSION_MIN (%d)", c.SessionMax, c.SessionMin)
	}
	return nil
}

// Selection returns the selector configuration for these settings.
func (c Config) Selection() selection.Config {
	sel := selection.DefaultConfig()
	sel.MinLength = c.SessionMin
	sel.MaxLength = c.SessionMax
	return sel
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer", k, v)
	}
	return n, nil
}
