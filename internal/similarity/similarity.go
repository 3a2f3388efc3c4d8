// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package similarity implements the word-set Jaccard kernel that the generic
// and marker diff engines use for every "similar enough" decision.
package similarity

import (
	"strings"
	"unicode"

	"github.com/noamoss/yamly/internal/value"
)

// Score computes word-set Jaccard similarity between a and b's canonical
// textual projections. It is deterministic, symmetric, and independent of
// surrounding structure: the single source of truth for similarity
// decisions in the engine.
//
// Tokenization splits on Unicode whitespace without lower-casing: document
// content may be Hebrew or otherwise case-significant.
func Score(a, b value.Value) float64 {
	setA := tokenSet(value.CanonicalText(a))
	setB := tokenSet(value.CanonicalText(b))
	return jaccard(setA, setB)
}

// ScoreText computes Jaccard similarity directly over two canonical-text
// strings, used by the marker engine to compare section content without
// re-projecting a Value.
func ScoreText(a, b string) float64 {
	return jaccard(tokenSet(a), tokenSet(b))
}

func tokenSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// IsEligibleForMatch reports whether v's canonical projection, once trimmed
// of whitespace, is non-empty. A scalar whose canonical projection is empty
// after trimming is ineligible for similarity-based matching: an
// empty-content section or an empty-string scalar must never anchor a move.
func IsEligibleForMatch(v value.Value) bool {
	return hasContent(v)
}

func hasContent(v value.Value) bool {
	switch v.Kind() {
	case value.KindStr:
		s, _ := v.Str()
		return strings.TrimSpace(s) != ""
	case value.KindMap:
		entries, _ := v.Map()
		return len(entries) > 0
	case value.KindSeq:
		items, _ := v.Seq()
		return len(items) > 0
	case value.KindNull:
		return false
	default:
		return true
	}
}

// TextEligibleForMatch is the same rule applied directly to canonical text,
// used by the marker engine when comparing section content (plain strings,
// not Values).
func TextEligibleForMatch(text string) bool {
	return strings.TrimSpace(text) != ""
}
