// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the yamly command-line surface on top of the
// engine, format, and term packages.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/noamoss/yamly/internal/term/color"
	"github.com/noamoss/yamly/internal/term/log"
)

func init() {
	color.DisableColorBasedOnEnvVar()
}

// BuildRootCmd assembles the yamly root command and its subcommands.
func BuildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "yamly",
		Short:         "Diff and validate YAML documents.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(log.DiagnosticWriter)
	cmd.SetErr(log.DiagnosticWriter)

	cmd.AddCommand(buildDiffCmd())
	cmd.AddCommand(buildValidateCmd())
	cmd.AddCommand(buildVersionCmd())
	return cmd
}
