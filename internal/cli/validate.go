// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/noamoss/yamly/internal/engine"
	"github.com/noamoss/yamly/internal/term/log"
)

type validateOpts struct {
	path string
	fs   afero.Fs
	eng  *engine.Engine
}

func newValidateOpts(path string) *validateOpts {
	return &validateOpts{path: path, fs: afero.NewOsFs(), eng: engine.New()}
}

// Execute parses and validates the document at o.path, reporting exit
// code 1 on a parse error and exit code 2 on a validation error.
func (o *validateOpts) Execute() error {
	log.PrintDebugf("validating %s\n", o.path)

	text, err := afero.ReadFile(o.fs, o.path)
	if err != nil {
		return &parseExitError{err: err}
	}

	doc, err := o.eng.Validate(text)
	if err != nil {
		if isParseError(err) {
			return &parseExitError{err: err}
		}
		return &validationExitError{err: err}
	}

	log.PrintSuccessf("%s is a valid legal document (%d section(s))\n", o.path, len(doc.Sections))
	return nil
}

func buildValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a legal document against the marker schema.",
		Args:  cobra.ExactArgs(1),
		Example: `
  Validate a legal document.
  /code $ yamly validate contract.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newValidateOpts(args[0]).Execute()
		},
	}
	cmd.SetOut(os.Stdout)
	return cmd
}
