// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func withDiagnosticWriter(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	prev := DiagnosticWriter
	DiagnosticWriter = &sb
	t.Cleanup(func() { DiagnosticWriter = prev })
	return &sb
}

func TestPrintSuccessln(t *testing.T) {
	color.NoColor = true
	sb := withDiagnosticWriter(t)

	PrintSuccessln("deployed", "ok")

	require.Equal(t, "Success! deployedok\n", sb.String())
}

func TestPrintErrorf(t *testing.T) {
	color.NoColor = true
	sb := withDiagnosticWriter(t)

	PrintErrorf("could not load %s", "config.yaml")

	require.Equal(t, "Error! could not load config.yaml", sb.String())
}

func TestPrintWarningln(t *testing.T) {
	color.NoColor = true
	sb := withDiagnosticWriter(t)

	PrintWarningln("deprecated flag")

	require.Equal(t, "Note: deprecated flag\n", sb.String())
}

func TestPrintln_NoPrefix(t *testing.T) {
	sb := withDiagnosticWriter(t)

	Println("plain", "line")

	require.Equal(t, "plain line\n", sb.String())
}
