// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package router classifies a pair of parsed documents as legal-document or
// generic mode and dispatches accordingly. It never produces changes itself.
package router

import "github.com/noamoss/yamly/internal/value"

// Mode is the diff mode a pair of documents is routed to.
type Mode int

// The two modes the router can select.
const (
	Generic Mode = iota
	LegalDocument
)

func (m Mode) String() string {
	if m == LegalDocument {
		return "legal_document"
	}
	return "general"
}

// Hint is the caller-supplied mode override. HintAuto defers to
// classification.
type Hint int

// The three mode hints a caller may supply.
const (
	HintAuto Hint = iota
	HintGeneral
	HintLegalDocument
)

// Route selects a Mode for the pair (old, new): an explicit hint is
// honoured outright; HintAuto classifies as LegalDocument iff both roots
// look like a legal-document envelope.
func Route(old, new value.Value, hint Hint) Mode {
	switch hint {
	case HintGeneral:
		return Generic
	case HintLegalDocument:
		return LegalDocument
	default:
		if looksLikeLegalDocument(old) && looksLikeLegalDocument(new) {
			return LegalDocument
		}
		return Generic
	}
}

// looksLikeLegalDocument reports whether root is a mapping whose first key
// is "document", whose value is a mapping containing a "sections" sequence
// whose every element contains a non-empty string "marker".
func looksLikeLegalDocument(root value.Value) bool {
	entries, ok := root.Map()
	if !ok || len(entries) == 0 {
		return false
	}
	if entries[0].Key != "document" {
		return false
	}
	doc := entries[0].Value
	if doc.Kind() != value.KindMap {
		return false
	}
	sectionsVal, ok := doc.Get("sections")
	if !ok {
		return false
	}
	sections, ok := sectionsVal.Seq()
	if !ok {
		return false
	}
	for _, s := range sections {
		if !hasNonEmptyMarker(s) {
			return false
		}
	}
	return true
}

func hasNonEmptyMarker(section value.Value) bool {
	if section.Kind() != value.KindMap {
		return false
	}
	m, ok := section.Get("marker")
	if !ok || m.Kind() != value.KindStr {
		return false
	}
	s, _ := m.Str()
	return s != ""
}
