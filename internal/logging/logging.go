// Package logging configures the structured logger used by the CLI.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Options controls the console handler.
type Options struct {
	// Verbose enables debug records
	Verbose bool
	// NoColor disables ANSI colors; colors are also off when w is not a terminal
	NoColor bool
}

// New returns a logger writing human-readable records to w.
func New(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor || !isTerminal(w),
	}))
}

// Setup installs a logger writing to w as the slog default and redirects the
// standard log package to it. The logger is returned for context injection.
func Setup(w io.Writer, opts Options) *slog.Logger {
	logger := New(w, opts)
	slog.SetDefault(logger)

	//overwrite standard log so it's always redirected to slog, in case some dep is using it
	log.SetFlags(0)
	log.SetOutput(&slogWriter{logger: logger})
	return logger
}

// slogWriter forwards standard log output to slog at warn level.
type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	msg := string(p)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	w.logger.Warn(msg)
	return len(p), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
