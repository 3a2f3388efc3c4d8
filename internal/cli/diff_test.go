// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly/internal/engine"
	"github.com/noamoss/yamly/internal/format"
	"github.com/noamoss/yamly/internal/router"
	"github.com/noamoss/yamly/internal/term/progress"
)

func newTestDiffOpts(t *testing.T, vars diffVars) (*diffOpts, *bytes.Buffer, afero.Fs) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	fs := afero.NewMemMapFs()
	var buf bytes.Buffer
	o := &diffOpts{
		diffVars: vars,
		fs:       fs,
		w:        &buf,
		eng:      engine.New(),
		spinner:  progress.New(),
	}
	return o, &buf, fs
}

func TestDiffOpts_Validate(t *testing.T) {
	require.NoError(t, (&diffOpts{diffVars: diffVars{}}).Validate())
	require.NoError(t, (&diffOpts{diffVars: diffVars{mode: "legal_document", format: "json"}}).Validate())

	err := (&diffOpts{diffVars: diffVars{mode: "bogus"}}).Validate()
	require.Error(t, err)

	err = (&diffOpts{diffVars: diffVars{format: "xml"}}).Validate()
	require.Error(t, err)
}

func TestDiffOpts_Execute_WritesToStdoutWhenNoOutputPath(t *testing.T) {
	o, buf, fs := newTestDiffOpts(t, diffVars{oldPath: "old.yaml", newPath: "new.yaml", format: string(format.StyleJSON)})
	require.NoError(t, afero.WriteFile(fs, "old.yaml", []byte("a: 1"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "new.yaml", []byte("a: 2"), 0o644))

	require.NoError(t, o.Execute())
	require.NotEmpty(t, buf.String())
}

func TestDiffOpts_Execute_WritesToOutputPath(t *testing.T) {
	o, _, fs := newTestDiffOpts(t, diffVars{
		oldPath:    "old.yaml",
		newPath:    "new.yaml",
		format:     string(format.StyleJSON),
		outputPath: "result.json",
		assumeYes:  true,
	})
	require.NoError(t, afero.WriteFile(fs, "old.yaml", []byte("a: 1"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "new.yaml", []byte("a: 2"), 0o644))

	require.NoError(t, o.Execute())

	written, err := afero.ReadFile(fs, "result.json")
	require.NoError(t, err)
	require.NotEmpty(t, written)
}

func TestDiffOpts_Execute_ExistingOutputDeclinedLeavesFileUntouched(t *testing.T) {
	o, _, fs := newTestDiffOpts(t, diffVars{
		oldPath:    "old.yaml",
		newPath:    "new.yaml",
		format:     string(format.StyleJSON),
		outputPath: "result.json",
	})
	require.NoError(t, afero.WriteFile(fs, "old.yaml", []byte("a: 1"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "new.yaml", []byte("a: 2"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "result.json", []byte("previous contents"), 0o644))

	prevConfirm := confirmOverwrite
	confirmOverwrite = func(string) (bool, error) { return false, nil }
	defer func() { confirmOverwrite = prevConfirm }()

	require.NoError(t, o.Execute())

	contents, err := afero.ReadFile(fs, "result.json")
	require.NoError(t, err)
	require.Equal(t, "previous contents", string(contents))
}

func TestDiffOpts_Execute_MissingFileReturnsParseExitError(t *testing.T) {
	o, _, _ := newTestDiffOpts(t, diffVars{oldPath: "old.yaml", newPath: "missing.yaml"})

	err := o.Execute()
	require.Error(t, err)
	var exitErr ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode())
}

func TestDiffOpts_Execute_BadIdentityRuleReturnsExitCode2(t *testing.T) {
	o, _, fs := newTestDiffOpts(t, diffVars{
		oldPath:     "old.yaml",
		newPath:     "new.yaml",
		identityRaw: []string{"containers:"},
	})
	require.NoError(t, afero.WriteFile(fs, "old.yaml", []byte("a: 1"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "new.yaml", []byte("a: 2"), 0o644))

	err := o.Execute()
	require.Error(t, err)
	var exitErr ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.ExitCode())
}

func TestHintFromMode(t *testing.T) {
	require.Equal(t, router.HintGeneral, hintFromMode("general"))
	require.Equal(t, router.HintLegalDocument, hintFromMode("legal_document"))
	require.Equal(t, router.HintAuto, hintFromMode(""))
	require.Equal(t, router.HintAuto, hintFromMode("auto"))
}

func TestFirstNonEmpty(t *testing.T) {
	require.Equal(t, "a", firstNonEmpty("", "a", "b"))
	require.Equal(t, "", firstNonEmpty("", "", ""))
	require.Equal(t, "b", firstNonEmpty("", "b"))
}
