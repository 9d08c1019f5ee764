// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package javalog is a minimal injected logger: a thin io.Writer
// wrapper rather than a global logging framework, so the CLI can point
// it at stderr and tests can point it anywhere.
package javalog

import (
	"fmt"
	"io"
)

// Logger is a minimal wrapper around an io.Writer.
type Logger struct {
	io.Writer
}

// New returns a new logger which writes to w.
func New(w io.Writer) *Logger {
	return &Logger{Writer: w}
}

// Logln logs a line.
func (l *Logger) Logln(args ...interface{}) {
	fmt.Fprintln(l, args...)
}

// Logf logs a formatted string.
func (l *Logger) Logf(f string, args ...interface{}) {
	fmt.Fprintf(l, f, args...)
}

// LogImportsfln logs a formatted line, prefixed with "javaimports: ".
func (l *Logger) LogImportsfln(format string, args ...interface{}) {
	fmt.Fprintf(l, "javaimports: "+format+"\n", args...)
}
