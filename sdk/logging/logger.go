// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package logging builds the zerolog loggers used by the CLI commands.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

// New returns a console logger writing to w at info level, or debug level
// when debug is set. Stdout is left to command output.
func New(w io.Writer, debug bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
	}).Level(level).With().Timestamp().Logger()
}

// NewDefaultCLILogger logs to stderr.
func NewDefaultCLILogger(debug bool) zerolog.Logger {
	return New(os.Stderr, debug)
}
