// Package log provides context-aware diagnostics logging for g-branches.
//
// Diagnostics are kept apart from primary output: everything here goes to
// stderr (or whatever writer the entry point provides) so that stdout stays
// clean for tables, panels, and diff text. The [Logger] wraps a zerolog
// console logger; levels are controlled by the --verbose and --quiet flags.
package log

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type ctxKey struct{}

// Logger provides leveled diagnostics output.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing console-formatted lines to out.
// verbose enables debug output, quiet suppresses everything below errors.
func New(out io.Writer, verbose, quiet bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	// Color only when out really is a terminal
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		cw.NoColor = true
	}
	zl := zerolog.New(cw).
		Level(level).
		With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{zl: zerolog.Nop()}
}

// Debug logs a debug line with alternating key-value pairs.
func (l *Logger) Debug(msg string, kv ...any) {
	l.emit(l.zl.Debug(), msg, kv)
}

// Warn logs a warning with alternating key-value pairs.
func (l *Logger) Warn(msg string, kv ...any) {
	l.emit(l.zl.Warn(), msg, kv)
}

// Error logs an error with alternating key-value pairs.
func (l *Logger) Error(msg string, kv ...any) {
	l.emit(l.zl.Error(), msg, kv)
}

func (l *Logger) emit(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		if err, isErr := kv[i+1].(error); isErr {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
