// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly/internal/legal"
)

func TestTitleCaseKind(t *testing.T) {
	require.Equal(t, "Value Changed", titleCaseKind("VALUE_CHANGED"))
	require.Equal(t, "Section Moved", titleCaseKind("SECTION_MOVED"))
}

func TestVersionBumpNote_BumpedUp(t *testing.T) {
	oldV, newV := "1.0.0", "2.0.0"
	changes := []legal.SectionChange{
		{
			Kind:          legal.ContentChanged,
			NewMarkerPath: []string{legal.MetadataMarker, "version.number"},
			OldContent:    &oldV,
			NewContent:    &newV,
		},
	}

	require.Equal(t, "version bumped\n", versionBumpNote(changes))
}

func TestVersionBumpNote_Dropped(t *testing.T) {
	oldV, newV := "2.0.0", "1.0.0"
	changes := []legal.SectionChange{
		{
			Kind:          legal.ContentChanged,
			NewMarkerPath: []string{legal.MetadataMarker, "version.number"},
			OldContent:    &oldV,
			NewContent:    &newV,
		},
	}

	require.Equal(t, "version dropped\n", versionBumpNote(changes))
}

func TestVersionBumpNote_NonSemverIgnored(t *testing.T) {
	oldV, newV := "rev-12", "rev-13"
	changes := []legal.SectionChange{
		{
			Kind:          legal.ContentChanged,
			NewMarkerPath: []string{legal.MetadataMarker, "version.number"},
			OldContent:    &oldV,
			NewContent:    &newV,
		},
	}

	require.Empty(t, versionBumpNote(changes))
}

func TestVersionBumpNote_NoVersionChangePresent(t *testing.T) {
	require.Empty(t, versionBumpNote(nil))
}
