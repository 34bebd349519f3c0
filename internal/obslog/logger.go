// Package obslog is a small structured-logging wrapper around
// github.com/rs/zerolog: custom field names, a level gate, and a
// Spawn-style helper for deriving a child logger scoped to one rewrite
// run.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with the field-name conventions this
// repository uses across the driver and the CLI.
type Logger struct {
	zl zerolog.Logger
}

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "msg"
}

// New returns a Logger writing to stdout at Info level, or Debug level
// when debug is true.
func New(debug bool) *Logger {
	return newWith(os.Stdout, debug)
}

func newWith(w io.Writer, debug bool) *Logger {
	lvl := zerolog.InfoLevel
	if debug {
		lvl = zerolog.DebugLevel
	}

	return &Logger{zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// Disabled returns a Logger that discards everything, the default for
// library code that has not opted into logging (rewrite.WithLogger).
func Disabled() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// SpawnForRun returns a child logger with a "run_id" field attached.
func (l *Logger) SpawnForRun(runID string) *Logger {
	return &Logger{zl: l.zl.With().Str("run_id", runID).Logger()}
}

// Debug logs msg with the given alternating key/value pairs at debug level.
func (l *Logger) Debug(msg string, kv ...interface{}) { l.log(l.zl.Debug(), msg, kv...) }

// Info logs msg with the given alternating key/value pairs at info level.
func (l *Logger) Info(msg string, kv ...interface{}) { l.log(l.zl.Info(), msg, kv...) }

// Warn logs msg with the given alternating key/value pairs at warn level.
func (l *Logger) Warn(msg string, kv ...interface{}) { l.log(l.zl.Warn(), msg, kv...) }

func (l *Logger) log(ev *zerolog.Event, msg string, kv ...interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
