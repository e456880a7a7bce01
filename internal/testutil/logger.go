package testutil

import "log/slog"

// NopLogger returns a logger that drops every record.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
