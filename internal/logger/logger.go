// Package logger configures the global zerolog instance for the whole
// application. Call Init once at startup; everything else logs through the
// zerolog global.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config defines logging behavior.
type Config struct {
	Level        string `json:"level"`         // debug, info, warn, error
	Format       string `json:"format"`        // "json" or "pretty"
	TimeFormat   string `json:"time_format"`   // timestamp layout, RFC3339 when empty
	ReportCaller bool   `json:"report_caller"` // include file:line in each event
}

// DefaultConfig returns info-level JSON logging.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
	}
}

// Init configures the global logger from config. Unparseable levels fall
// back to info.
func Init(config Config) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: config.TimeFormat,
		}
	}

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	contextLogger := zerolog.New(output).
		Level(level).
		With().
		Timestamp()
	if config.ReportCaller {
		contextLogger = contextLogger.Caller()
	}

	log.Logger = contextLogger.Logger()
}
