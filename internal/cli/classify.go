// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io"
	"os"

	"github.com/noamoss/yamly/internal/yamlsrc"
)

// isParseError reports whether err (or anything it wraps) is a
// yamlsrc.ParseError, the only error that maps to exit code 1 rather
// than 2.
func isParseError(err error) bool {
	var parseErr *yamlsrc.ParseError
	if errors.As(err, &parseErr) {
		return true
	}
	var exitErr ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == 1
	}
	return false
}

// isTerminal reports whether w looks like an interactive terminal, so a
// spinner doesn't corrupt piped output (e.g. --format json | jq).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
