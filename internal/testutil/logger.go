// Package testutil provides test utilities for structured logging.
package testutil

import (
	"log/slog"
	"testing"

	"github.com/lmittmann/tint"
)

// NewTestLogger returns a debug logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(tint.NewHandler(testWriter{t}, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: true,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
