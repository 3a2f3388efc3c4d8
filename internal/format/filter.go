// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"strings"

	"github.com/noamoss/yamly/internal/engine"
	"github.com/noamoss/yamly/internal/generic"
	"github.com/noamoss/yamly/internal/legal"
)

func filterGeneric(changes []generic.Change, f engine.Filters) []generic.Change {
	out := make([]generic.Change, 0, len(changes))
	for _, c := range changes {
		if f.DropUnchanged && c.Kind == generic.Unchanged {
			continue
		}
		if len(f.Kinds) > 0 && !f.Kinds[c.Kind.String()] {
			continue
		}
		if f.PathPrefix != "" && !strings.HasPrefix(c.Path.String(), f.PathPrefix) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func filterLegal(changes []legal.SectionChange, f engine.Filters) []legal.SectionChange {
	out := make([]legal.SectionChange, 0, len(changes))
	for _, c := range changes {
		if f.DropUnchanged && c.Kind == legal.SectionUnchanged {
			continue
		}
		if len(f.Kinds) > 0 && !f.Kinds[c.Kind.String()] {
			continue
		}
		if f.PathPrefix != "" && !markerPathHasPrefix(c, f.PathPrefix) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func markerPathHasPrefix(c legal.SectionChange, prefix string) bool {
	return strings.HasPrefix(strings.Join(c.NewMarkerPath, "."), prefix) ||
		strings.HasPrefix(strings.Join(c.OldMarkerPath, "."), prefix)
}
