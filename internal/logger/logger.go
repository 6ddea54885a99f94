// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Level        string // debug, info, warn, error
	Format       string // json or pretty
	TimeFormat   string
	ReportCaller bool
}

// ConfigFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_CALLER.
func ConfigFromEnv() Config {
	return Config{
		Level:        os.Getenv("LOG_LEVEL"),
		Format:       os.Getenv("LOG_FORMAT"),
		ReportCaller: strings.EqualFold(os.Getenv("LOG_CALLER"), "true"),
	}
}

// Init replaces the global zerolog logger. Unknown levels fall back to info.
func Init(cfg Config) zerolog.Logger {
	return InitWriter(cfg, os.Stderr)
}

func InitWriter(cfg Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	log.Logger = l
	return l
}
