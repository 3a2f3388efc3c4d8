// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package color centralizes color-state decisions shared by
// github.com/fatih/color (used by internal/format and internal/term/log)
// and github.com/AlecAivazis/survey/v2 (used by internal/cli's prompts).
package color

import (
	"os"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
)

const colorEnvVar = "COLOR"

// lookupEnv is indirected so tests can substitute a fake environment.
var lookupEnv = os.LookupEnv

// DisableColorBasedOnEnvVar sets survey's and fatih/color's global color
// state from the COLOR environment variable: "true" forces color on,
// "false" forces it off, and an unset variable leaves color.NoColor's own
// TTY auto-detection as the deciding factor.
func DisableColorBasedOnEnvVar() {
	v, ok := lookupEnv(colorEnvVar)
	if !ok {
		core.DisableColor = color.NoColor
		return
	}
	switch v {
	case "false":
		core.DisableColor = true
		color.NoColor = true
	case "true":
		core.DisableColor = false
		color.NoColor = false
	default:
		core.DisableColor = color.NoColor
	}
}

// ColorGenerator returns a function that cycles through a fixed palette of
// ten distinct colors.
func ColorGenerator() func() *color.Color {
	palette := []*color.Color{
		color.New(color.FgCyan),
		color.New(color.FgHiCyan),
		color.New(color.FgMagenta),
		color.New(color.FgHiMagenta),
		color.New(color.FgBlue),
		color.New(color.FgHiBlue),
		color.New(color.FgYellow),
		color.New(color.FgHiYellow),
		color.New(color.FgGreen),
		color.New(color.FgHiGreen),
	}
	i := 0
	return func() *color.Color {
		c := palette[i%len(palette)]
		i++
		return c
	}
}
