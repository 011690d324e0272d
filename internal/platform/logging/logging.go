// Package logging builds the zerolog logger shared by every component.
// Logs go to a writer separate from operator-facing output so the two never
// interleave on the terminal.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.elastic.co/ecszerolog"

	"github.com/rokayasamy05/Mini-EHR-Console/internal/config"
)

// New returns a logger writing to w in the given format at the given level.
func New(w io.Writer, format, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	var logger zerolog.Logger
	switch format {
	case config.LogFormatConsole:
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
	case config.LogFormatJSON:
		logger = zerolog.New(w).With().Timestamp().Logger()
	case config.LogFormatECS:
		// ECS format for Elasticsearch ingestion; ecszerolog adds @timestamp itself
		logger = ecszerolog.New(w)
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}

	return logger.Level(lvl).With().Str("app", "ehr-console").Logger(), nil
}

// FromConfig is New with the format and level taken from cfg.
func FromConfig(w io.Writer, cfg *config.Config) (zerolog.Logger, error) {
	return New(w, cfg.ResolvedLogFormat(), cfg.LogLevel)
}

// WithSession tags every event of logger with a fresh session id.
func WithSession(logger zerolog.Logger) (zerolog.Logger, string) {
	sid := uuid.NewString()
	return logger.With().Str("session_id", sid).Logger(), sid
}
