// Package logging builds the program logger from explicit configuration or
// from the environment.
//
// The logger is returned as a value and never installed globally: callers
// pass it along, typically through context.Context:
//
//	logger, err := logging.FromEnviron(os.Getenv)
//	ctx = logger.WithContext(ctx)
//	// library code: zerolog.Ctx(ctx).Error()...
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Environment variables read by FromEnviron.
const (
	EnvLevel  = "DCOS_LOG_LEVEL"
	EnvFormat = "DCOS_LOG_FORMAT"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ValidLevels lists the accepted level names in increasing severity.
var ValidLevels = []string{"debug", "info", "warning", "error", "critical"}

var levels = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"critical": zerolog.FatalLevel,
}

// Config holds logging configuration.
type Config struct {
	Level  string    // one of ValidLevels, any case; empty disables logging
	Format string    // console (default) or json
	Out    io.Writer // defaults to os.Stderr
}

// LevelError reports a level name outside ValidLevels.
type LevelError struct {
	Value string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("Log level set to an unknown value %q. Valid values are %q", e.Value, ValidLevels)
}

// ParseLevel maps a level name (case-insensitive) to its zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	if lvl, ok := levels[strings.ToLower(s)]; ok {
		return lvl, nil
	}
	return zerolog.NoLevel, &LevelError{Value: s}
}

// New returns a logger for cfg. With an empty level the logger discards
// everything. The console format prints messages only, followed by any
// attached fields.
func New(cfg Config) (zerolog.Logger, error) {
	if cfg.Level == "" {
		return zerolog.Nop(), nil
	}
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	switch cfg.Format {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			PartsOrder: []string{zerolog.MessageFieldName},
		}
		return zerolog.New(out).Level(lvl), nil
	case FormatJSON:
		return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
}

// FromEnviron builds the logger from DCOS_LOG_LEVEL and DCOS_LOG_FORMAT.
// getenv is usually os.Getenv.
func FromEnviron(getenv func(string) string) (zerolog.Logger, error) {
	return New(Config{
		Level:  getenv(EnvLevel),
		Format: getenv(EnvFormat),
	})
}

// Component returns a child logger tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
