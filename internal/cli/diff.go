// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/noamoss/yamly/internal/engine"
	"github.com/noamoss/yamly/internal/format"
	"github.com/noamoss/yamly/internal/router"
	"github.com/noamoss/yamly/internal/term/log"
	"github.com/noamoss/yamly/internal/term/progress"
)

type diffVars struct {
	oldPath     string
	newPath     string
	mode        string
	identityRaw []string
	format      string
	outputPath  string
	assumeYes   bool
}

type diffOpts struct {
	diffVars

	fs      afero.Fs
	w       io.Writer
	eng     *engine.Engine
	spinner *progress.Spinner
}

func newDiffOpts(vars diffVars) *diffOpts {
	return &diffOpts{
		diffVars: vars,
		fs:       afero.NewOsFs(),
		w:        os.Stdout,
		eng:      engine.New(),
		spinner:  progress.New(),
	}
}

// Validate checks flag values that don't require any I/O.
func (o *diffOpts) Validate() error {
	switch o.mode {
	case "", "auto", "general", "legal_document":
	default:
		return &errUnknownMode{Mode: o.mode}
	}
	switch o.format {
	case "", string(format.StyleJSON), string(format.StyleText), string(format.StyleYAML):
	default:
		return &format.UnsupportedStyleError{Style: o.format}
	}
	return nil
}

// Execute loads both documents, runs the diff, and writes the formatted
// result to stdout or --output.
func (o *diffOpts) Execute() error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	outputFormat := firstNonEmpty(o.format, cfg.Format, string(format.StyleText))
	outputMode := firstNonEmpty(o.mode, cfg.Mode, "auto")

	flagRules, err := parseIdentityRules(o.identityRaw)
	if err != nil {
		return &validationExitError{err: err}
	}
	rules, err := mergeIdentityRules(flagRules, cfg.Rules)
	if err != nil {
		return err
	}

	log.PrintDebugf("parsing %s and %s\n", o.oldPath, o.newPath)

	showSpinner := outputFormat != string(format.StyleJSON) && isTerminal(o.w)
	if showSpinner {
		o.spinner.Start(fmt.Sprintf("diffing %s and %s", o.oldPath, o.newPath))
	}

	oldText, newText, err := loadPair(o.fs, o.oldPath, o.newPath)
	if err != nil {
		if showSpinner {
			o.spinner.Stop("")
		}
		return &parseExitError{err: fmt.Errorf("read input files: %w", err)}
	}

	result, err := o.eng.Diff(oldText, newText, hintFromMode(outputMode), rules)
	if showSpinner {
		o.spinner.Stop("done")
	}
	if err != nil {
		return classifyEngineError(err)
	}

	rendered, err := format.Format(result, outputFormat, engine.Filters{})
	if err != nil {
		return err
	}

	if o.outputPath == "" {
		fmt.Fprint(o.w, rendered)
		return nil
	}
	return o.writeOutput(rendered)
}

func (o *diffOpts) writeOutput(rendered string) error {
	if fileExists(o.fs, o.outputPath) && !o.assumeYes {
		ok, err := confirmOverwrite(o.outputPath)
		if err != nil {
			return err
		}
		if !ok {
			log.PrintWarningln("aborted: not overwriting " + o.outputPath)
			return nil
		}
	}
	if err := afero.WriteFile(o.fs, o.outputPath, []byte(rendered), 0o644); err != nil {
		return err
	}
	log.PrintSuccessln("wrote " + o.outputPath)
	return nil
}

func hintFromMode(mode string) router.Hint {
	switch mode {
	case "general":
		return router.HintGeneral
	case "legal_document":
		return router.HintLegalDocument
	default:
		return router.HintAuto
	}
}

// classifyEngineError maps the engine's error taxonomy to process exit
// codes: a parse failure exits 1, everything else (bad-identity-rule,
// validation-error, duplicate-marker) exits 2.
func classifyEngineError(err error) error {
	if isParseError(err) {
		return &parseExitError{err: err}
	}
	return &validationExitError{err: err}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func buildDiffCmd() *cobra.Command {
	vars := diffVars{}
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Diff two YAML documents.",
		Args:  cobra.ExactArgs(2),
		Example: `
  Diff two CloudFormation-style templates.
  /code $ yamly diff old.yaml new.yaml

  Diff two legal documents as JSON.
  /code $ yamly diff old.yaml new.yaml --mode legal_document --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vars.oldPath, vars.newPath = args[0], args[1]
			opts := newDiffOpts(vars)
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVar(&vars.mode, modeFlag, "", modeFlagDescription)
	cmd.Flags().StringArrayVar(&vars.identityRaw, identityRuleFlag, nil, identityRuleFlagDescription)
	cmd.Flags().StringVar(&vars.format, formatFlag, "", formatFlagDescription)
	cmd.Flags().StringVar(&vars.outputPath, outputFlag, "", outputFlagDescription)
	cmd.Flags().BoolVar(&vars.assumeYes, yesFlag, false, yesFlagDescription)
	return cmd
}
