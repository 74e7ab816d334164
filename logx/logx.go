// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for the geometry kernel on top
// of [log/slog], with a user-controllable verbosity level.
package logx

import "log/slog"

// UserLevel is the verbosity level that the user has selected for
// the program. Messages below this level are dropped.
var UserLevel = defaultUserLevel

// Debug logs the given message at the debug level,
// with any given key-value arguments.
func Debug(msg string, args ...any) {
	if UserLevel <= slog.LevelDebug {
		slog.Debug(msg, args...)
	}
}

// Info logs the given message at the info level,
// with any given key-value arguments.
func Info(msg string, args ...any) {
	if UserLevel <= slog.LevelInfo {
		slog.Info(msg, args...)
	}
}

// Warn logs the given message at the warn level,
// with any given key-value arguments.
func Warn(msg string, args ...any) {
	if UserLevel <= slog.LevelWarn {
		slog.Warn(msg, args...)
	}
}

// Error logs the given message at the error level,
// with any given key-value arguments.
func Error(msg string, args ...any) {
	if UserLevel <= slog.LevelError {
		slog.Error(msg, args...)
	}
}
