// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled printing and the default
// [slog] handler, both controlled by [UserLevel].
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default is
// [slog.LevelInfo]; with the "debug" build tag it is [slog.LevelDebug],
// and with the "release" build tag it is [slog.LevelWarn].
// Updates are reflected by the handler from [SetDefaultLogger].
var UserLevel = defaultUserLevel

type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a text [slog.Handler] writing to w
// that filters by [UserLevel].
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: userLeveler{}})
}

// SetDefaultLogger sets the default logger to one writing to
// os.Stderr through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// printlnLevel prints the given values if level is at or above [UserLevel].
func printlnLevel(level slog.Level, v ...any) {
	if level < UserLevel {
		return
	}
	fmt.Println(v...)
}

// printfLevel prints the given formatted values if level is at or above [UserLevel].
func printfLevel(level slog.Level, format string, v ...any) {
	if level < UserLevel {
		return
	}
	fmt.Printf(format, v...)
}

// PrintlnDebug prints at [slog.LevelDebug].
func PrintlnDebug(v ...any) {
	printlnLevel(slog.LevelDebug, v...)
}

// PrintfDebug prints at [slog.LevelDebug].
func PrintfDebug(format string, v ...any) {
	printfLevel(slog.LevelDebug, format, v...)
}
