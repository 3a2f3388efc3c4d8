// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

import "github.com/google/uuid"

// SectionChangeKind enumerates the closed set of SectionChange variants.
type SectionChangeKind int

// The full set of SectionChange kinds.
const (
	SectionAdded SectionChangeKind = iota
	SectionRemoved
	ContentChanged
	TitleChanged
	SectionMoved
	SectionUnchanged
)

func (k SectionChangeKind) String() string {
	switch k {
	case SectionAdded:
		return "SECTION_ADDED"
	case SectionRemoved:
		return "SECTION_REMOVED"
	case ContentChanged:
		return "CONTENT_CHANGED"
	case TitleChanged:
		return "TITLE_CHANGED"
	case SectionMoved:
		return "SECTION_MOVED"
	case SectionUnchanged:
		return "UNCHANGED"
	default:
		return "UNKNOWN"
	}
}

// MetadataMarker is the synthetic marker used for document-level metadata
// change records.
const MetadataMarker = "__metadata__"

// SectionChange is one record of the marker engine's output. A single
// section may produce multiple records (e.g. a SectionMoved alongside a
// TitleChanged).
type SectionChange struct {
	ID             string
	SectionID      string
	Kind           SectionChangeKind
	Marker         string
	OldMarkerPath  []string
	NewMarkerPath  []string
	OldIDPath      []string
	NewIDPath      []string
	OldContent     *string
	NewContent     *string
	OldTitle       *string
	NewTitle       *string
	OldSectionYAML *string
	NewSectionYAML *string
	OldLine        *int
	NewLine        *int
}

func newChangeID() string { return uuid.NewString() }
