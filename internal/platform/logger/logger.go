// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package logger builds the structured JSON logger shared by every component.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger on stdout tagged with the application name.
// Debug enables LevelDebug.
func New(app string, debug bool) *slog.Logger {
	return NewWithWriter(os.Stdout, app, debug)
}

// NewWithWriter is [New] writing to w.
func NewWithWriter(w io.Writer, app string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", app))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
