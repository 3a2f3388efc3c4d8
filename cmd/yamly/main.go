// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the yamly root command.
package main

import (
	"errors"
	"os"

	"github.com/noamoss/yamly/internal/cli"
	"github.com/noamoss/yamly/internal/term/log"
)

func main() {
	cmd := cli.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		log.PrintErrorln(err.Error())
		var exitErr cli.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
