package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LoggingConfig selects the zerolog level and output format.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" validate:"oneof=debug info warn error"`
	// Format is "json" for production or "console" for humans.
	Format string `json:"format" validate:"oneof=json console"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// NewLogger builds the root logger. A nil writer means stdout.
func (c LoggingConfig) NewLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if c.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "leave-planner").Logger()
}
