// Package telemetry wraps zerolog the way jhkimqd-chaos-utils'
// pkg/reporting.Logger does: a thin struct around a zerolog.Logger,
// configured once at startup, used for run lifecycle and failure
// diagnostics. It never touches the per-sweep CSV rows — those are
// data (internal/report's job), not log lines.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level mirrors the four levels jhkimqd-chaos-utils' reporting package
// exposes.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Output io.Writer
}

// Logger is a structured logger for run lifecycle events: startup,
// per-sweep debug traces (when Level==LevelDebug), and fatal invariant
// diagnostics.
type Logger struct {
	z zerolog.Logger
}

// New constructs a Logger from cfg. A nil Output defaults to stderr, so
// log lines never interleave with CSV data written to stdout by
// scripts piping the process's stdout elsewhere.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	z := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		z = z.Level(zerolog.DebugLevel)
	case LevelWarn:
		z = z.Level(zerolog.WarnLevel)
	case LevelError:
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}

	return &Logger{z: z}
}

// Info logs a structured info-level message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.event(l.z.Info(), msg, fields)
}

// Debug logs a structured debug-level message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.event(l.z.Debug(), msg, fields)
}

// Error logs a structured error-level message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.event(l.z.Error(), msg, fields)
}

func (l *Logger) event(ev *zerolog.Event, msg string, fields map[string]interface{}) {
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
