// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly/internal/engine"
	"github.com/noamoss/yamly/internal/generic"
	"github.com/noamoss/yamly/internal/router"
	"github.com/noamoss/yamly/internal/value"
)

func sampleResult() engine.Result {
	old := value.Int(80, 1)
	new := value.Int(8080, 1)
	return engine.Result{
		Mode: router.Generic,
		Generic: []generic.Change{
			{
				ID:       "c1",
				Kind:     generic.ValueChanged,
				Path:     value.Root().Append(value.Field("port")),
				OldValue: &old,
				NewValue: &new,
			},
		},
	}
}

func TestFormat_JSON(t *testing.T) {
	out, err := Format(sampleResult(), string(StyleJSON), engine.Filters{})
	require.NoError(t, err)
	require.Contains(t, out, `"kind": "VALUE_CHANGED"`)
	require.Contains(t, out, `"path": "$.port"`)
}

func TestFormat_YAML(t *testing.T) {
	out, err := Format(sampleResult(), string(StyleYAML), engine.Filters{})
	require.NoError(t, err)
	require.Contains(t, out, "kind: VALUE_CHANGED")
}

func TestFormat_Text(t *testing.T) {
	out, err := Format(sampleResult(), string(StyleText), engine.Filters{})
	require.NoError(t, err)
	require.Contains(t, out, "$.port")
	require.Contains(t, out, "1 change")
}

func TestFormat_UnsupportedStyle(t *testing.T) {
	_, err := Format(sampleResult(), "xml", engine.Filters{})
	require.Error(t, err)
	var unsupported *UnsupportedStyleError
	require.ErrorAs(t, err, &unsupported)
}

func TestFormat_FiltersApplyBeforeRendering(t *testing.T) {
	result := sampleResult()
	result.Generic = append(result.Generic, generic.Change{
		Kind: generic.Unchanged,
		Path: value.Root().Append(value.Field("name")),
	})

	out, err := Format(result, string(StyleJSON), engine.Filters{DropUnchanged: true})
	require.NoError(t, err)
	require.NotContains(t, out, "UNCHANGED")
}
