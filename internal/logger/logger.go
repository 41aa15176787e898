package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"travelbot/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. It writes to stdout at info level
// until Init is called.
var Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger from the logging configuration
func Init(cfg config.LoggingConfig) error {
	return InitWithWriter(cfg, os.Stdout)
}

// InitWithWriter configures the global logger to write to out
func InitWithWriter(cfg config.LoggingConfig, out io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	switch strings.ToLower(cfg.Format) {
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json", "":
	default:
		return fmt.Errorf("invalid log format '%s'", cfg.Format)
	}

	Logger = zerolog.New(out).With().Timestamp().Logger()

	// Also set the global zerolog logger for compatibility
	log.Logger = Logger

	return nil
}
