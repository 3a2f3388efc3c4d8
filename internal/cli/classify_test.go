// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly/internal/yamlsrc"
)

func TestIsParseError(t *testing.T) {
	require.True(t, isParseError(&yamlsrc.ParseError{Message: "boom"}))
	require.True(t, isParseError(&parseExitError{err: errors.New("boom")}))
	require.False(t, isParseError(&validationExitError{err: errors.New("boom")}))
	require.False(t, isParseError(errors.New("plain error")))
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))
}

func TestIsTerminal_RegularFileIsNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	require.False(t, isTerminal(f))
}
