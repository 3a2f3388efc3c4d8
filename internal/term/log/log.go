// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package log implements leveled console output for the CLI: success,
// error, warning, unprefixed, and debug prints, each with plain/ln/f variants,
// backed by a package-level DiagnosticWriter the caller can redirect in
// tests.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DiagnosticWriter is where every package-level Print* function writes.
// Tests redirect it to a strings.Builder.
var DiagnosticWriter io.Writer = os.Stderr

var (
	successPrefix = color.GreenString("Success!")
	errorPrefix   = color.RedString("Error!")
	warningPrefix = color.YellowString("Note:")
)

// PrintSuccess writes a success-prefixed message.
func PrintSuccess(args ...interface{}) {
	fmt.Fprint(DiagnosticWriter, successPrefix+" "+fmt.Sprint(args...))
}

// PrintSuccessln writes a success-prefixed message followed by a newline.
func PrintSuccessln(args ...interface{}) {
	fmt.Fprintln(DiagnosticWriter, successPrefix+" "+fmt.Sprint(args...))
}

// PrintSuccessf writes a formatted success-prefixed message.
func PrintSuccessf(format string, args ...interface{}) {
	fmt.Fprintf(DiagnosticWriter, successPrefix+" "+format, args...)
}

// PrintError writes an error-prefixed message.
func PrintError(args ...interface{}) {
	fmt.Fprint(DiagnosticWriter, errorPrefix+" "+fmt.Sprint(args...))
}

// PrintErrorln writes an error-prefixed message followed by a newline.
func PrintErrorln(args ...interface{}) {
	fmt.Fprintln(DiagnosticWriter, errorPrefix+" "+fmt.Sprint(args...))
}

// PrintErrorf writes a formatted error-prefixed message.
func PrintErrorf(format string, args ...interface{}) {
	fmt.Fprintf(DiagnosticWriter, errorPrefix+" "+format, args...)
}

// PrintWarning writes a warning-prefixed message.
func PrintWarning(args ...interface{}) {
	fmt.Fprint(DiagnosticWriter, warningPrefix+" "+fmt.Sprint(args...))
}

// PrintWarningln writes a warning-prefixed message followed by a newline.
func PrintWarningln(args ...interface{}) {
	fmt.Fprintln(DiagnosticWriter, warningPrefix+" "+fmt.Sprint(args...))
}

// PrintWarningf writes a formatted warning-prefixed message.
func PrintWarningf(format string, args ...interface{}) {
	fmt.Fprintf(DiagnosticWriter, warningPrefix+" "+format, args...)
}

// Print writes a message with no prefix.
func Print(args ...interface{}) {
	fmt.Fprint(DiagnosticWriter, args...)
}

// Println writes a message with no prefix, followed by a newline.
func Println(args ...interface{}) {
	fmt.Fprintln(DiagnosticWriter, args...)
}

// Printf writes a formatted message with no prefix.
func Printf(format string, args ...interface{}) {
	fmt.Fprintf(DiagnosticWriter, format, args...)
}

// PrintDebug writes a debug message with no prefix; kept distinct from
// Print so call sites can express intent even though both render the same.
func PrintDebug(args ...interface{}) {
	fmt.Fprint(DiagnosticWriter, args...)
}

// PrintDebugln writes a debug message with no prefix, followed by a
// newline.
func PrintDebugln(args ...interface{}) {
	fmt.Fprintln(DiagnosticWriter, args...)
}

// PrintDebugf writes a formatted debug message with no prefix.
func PrintDebugf(format string, args ...interface{}) {
	fmt.Fprintf(DiagnosticWriter, format, args...)
}
