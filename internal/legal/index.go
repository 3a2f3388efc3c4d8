// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

import "strings"

// entry is one indexed section: its marker path and id path from the
// document root, alongside the section itself.
type entry struct {
	section    *Section
	markerPath []string
	idPath     []string
}

// buildIndex flattens a document's section tree into a map keyed by marker
// path, detecting duplicate sibling markers along the way.
func buildIndex(sections []Section) (map[string]*entry, error) {
	idx := make(map[string]*entry)
	if err := indexLevel(sections, nil, nil, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func indexLevel(sections []Section, parentMarkerPath, parentIDPath []string, idx map[string]*entry) error {
	siblingSeen := make(map[string]bool, len(sections))
	for i := range sections {
		s := &sections[i]
		if siblingSeen[s.Marker] {
			return &DuplicateMarkerError{ParentPath: parentMarkerPath, Marker: s.Marker}
		}
		siblingSeen[s.Marker] = true

		markerPath := appendPath(parentMarkerPath, s.Marker)
		idPath := appendPath(parentIDPath, s.ID)
		idx[pathKey(markerPath)] = &entry{section: s, markerPath: markerPath, idPath: idPath}

		if err := indexLevel(s.Children, markerPath, idPath, idx); err != nil {
			return err
		}
	}
	return nil
}

func appendPath(path []string, step string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = step
	return out
}

// pathKey renders a marker path as a map key; NUL-joined so a marker
// containing "." cannot collide with a path boundary.
func pathKey(path []string) string { return strings.Join(path, "\x00") }
