// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
)

// Logger wraps an io.Writer with the same leveled-print methods as the
// package-level Print* functions, for callers that want an injectable
// writer instead of mutating the shared DiagnosticWriter.
type Logger struct {
	w io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Success writes a success-prefixed message.
func (l *Logger) Success(args ...interface{}) {
	fmt.Fprint(l.w, successPrefix+" "+fmt.Sprint(args...))
}

// Successln writes a success-prefixed message followed by a newline.
func (l *Logger) Successln(args ...interface{}) {
	fmt.Fprintln(l.w, successPrefix+" "+fmt.Sprint(args...))
}

// Successf writes a formatted success-prefixed message.
func (l *Logger) Successf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, successPrefix+" "+format, args...)
}

// Error writes an error-prefixed message.
func (l *Logger) Error(args ...interface{}) {
	fmt.Fprint(l.w, errorPrefix+" "+fmt.Sprint(args...))
}

// Errorln writes an error-prefixed message followed by a newline.
func (l *Logger) Errorln(args ...interface{}) {
	fmt.Fprintln(l.w, errorPrefix+" "+fmt.Sprint(args...))
}

// Errorf writes a formatted error-prefixed message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, errorPrefix+" "+format, args...)
}

// Warning writes a warning-prefixed message.
func (l *Logger) Warning(args ...interface{}) {
	fmt.Fprint(l.w, warningPrefix+" "+fmt.Sprint(args...))
}

// Warningln writes a warning-prefixed message followed by a newline.
func (l *Logger) Warningln(args ...interface{}) {
	fmt.Fprintln(l.w, warningPrefix+" "+fmt.Sprint(args...))
}

// Warningf writes a formatted warning-prefixed message.
func (l *Logger) Warningf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, warningPrefix+" "+format, args...)
}

// Info writes a message with no prefix.
func (l *Logger) Info(args ...interface{}) {
	fmt.Fprint(l.w, args...)
}

// Infoln writes a message with no prefix, followed by a newline.
func (l *Logger) Infoln(args ...interface{}) {
	fmt.Fprintln(l.w, args...)
}

// Infof writes a formatted message with no prefix.
func (l *Logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format, args...)
}

// Debug writes a debug message with no prefix.
func (l *Logger) Debug(args ...interface{}) {
	fmt.Fprint(l.w, args...)
}

// Debugln writes a debug message with no prefix, followed by a newline.
func (l *Logger) Debugln(args ...interface{}) {
	fmt.Fprintln(l.w, args...)
}

// Debugf writes a formatted debug message with no prefix.
func (l *Logger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format, args...)
}
