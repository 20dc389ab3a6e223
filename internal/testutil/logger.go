// Package testutil holds shared fakes for package tests.
package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/notekeeper/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
