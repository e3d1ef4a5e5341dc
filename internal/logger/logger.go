// SPDX-License-Identifier: MIT

// Package logger builds the zerolog loggers handed to the solver components.
package logger

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w at the given level ("debug", "info", …;
// unknown or empty ⇒ info). Format "json" writes one JSON object per line;
// anything else uses the uncolored console writer.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if !strings.EqualFold(format, FormatJSON) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: milliTimeFormat, NoColor: true}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// NewRunID returns a random 8-character alphanumeric identifier for one solve.
func NewRunID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("run%05d", time.Now().UnixNano()%100000)
	}
	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}

	return string(b)
}

// ForRun returns l tagged with runID.
func ForRun(l zerolog.Logger, runID string) zerolog.Logger {
	return l.With().Str("run", runID).Logger()
}
