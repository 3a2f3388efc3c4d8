// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"sort"

	"github.com/noamoss/yamly/internal/similarity"
)

const moveSimilarityThreshold = 0.95

// Diff implements the marker diff engine: exact matching by marker path,
// greedy content-similarity move detection, residual add/remove
// classification, and document metadata diffing.
func Diff(old, new *Document) ([]SectionChange, error) {
	oldIdx, err := buildIndex(old.Sections)
	if err != nil {
		return nil, err
	}
	newIdx, err := buildIndex(new.Sections)
	if err != nil {
		return nil, err
	}

	var changes []SectionChange

	matchedOld := make(map[string]bool, len(oldIdx))
	matchedNew := make(map[string]bool, len(newIdx))

	// Step 2: exact matches, in old sections' source-line order (marker-path
	// key as tie-break) for a stable traversal.
	for _, key := range sortedKeys(oldIdx) {
		oe, ok := newIdx[key]
		if !ok {
			continue
		}
		own := oldIdx[key]
		matchedOld[key] = true
		matchedNew[key] = true
		changes = append(changes, exactMatchChanges(own, oe)...)
	}

	// Step 3: move detection among unmatched sections with non-empty
	// content, greedy by descending similarity.
	changes = append(changes, detectSectionMoves(oldIdx, newIdx, matchedOld, matchedNew)...)

	// Step 4: residuals.
	for _, key := range sortedKeys(oldIdx) {
		if matchedOld[key] {
			continue
		}
		e := oldIdx[key]
		changes = append(changes, newSectionChange(SectionRemoved, e.section, e, nil))
	}
	for _, key := range sortedKeys(newIdx) {
		if matchedNew[key] {
			continue
		}
		e := newIdx[key]
		changes = append(changes, newSectionChange(SectionAdded, e.section, nil, e))
	}

	// Step 5: metadata diff.
	changes = append(changes, diffMetadata(old, new)...)

	return changes, nil
}

func sortedKeys(idx map[string]*entry) []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := idx[keys[i]].section.Line, idx[keys[j]].section.Line
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func exactMatchChanges(oe, ne *entry) []SectionChange {
	var out []SectionChange
	titleDiffers := oe.section.Title != ne.section.Title
	contentDiffers := oe.section.Content != ne.section.Content

	if !titleDiffers && !contentDiffers {
		out = append(out, newSectionChange(SectionUnchanged, ne.section, oe, ne))
		return out
	}
	if contentDiffers {
		out = append(out, newSectionChange(ContentChanged, ne.section, oe, ne))
	}
	if titleDiffers {
		out = append(out, newSectionChange(TitleChanged, ne.section, oe, ne))
	}
	return out
}

type moveCandidate struct {
	oldKey, newKey string
	score          float64
}

func detectSectionMoves(oldIdx, newIdx map[string]*entry, matchedOld, matchedNew map[string]bool) []SectionChange {
	var pairs []moveCandidate
	for ok, oe := range oldIdx {
		if matchedOld[ok] || !similarity.TextEligibleForMatch(oe.section.Content) {
			continue
		}
		for nk, ne := range newIdx {
			if matchedNew[nk] || !similarity.TextEligibleForMatch(ne.section.Content) {
				continue
			}
			score := similarity.ScoreText(oe.section.Content, ne.section.Content)
			if score >= moveSimilarityThreshold {
				pairs = append(pairs, moveCandidate{ok, nk, score})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score != pairs[j].score {
			return pairs[i].score > pairs[j].score
		}
		if pairs[i].oldKey != pairs[j].oldKey {
			return pairs[i].oldKey < pairs[j].oldKey
		}
		return pairs[i].newKey < pairs[j].newKey
	})

	var out []SectionChange
	for _, p := range pairs {
		if matchedOld[p.oldKey] || matchedNew[p.newKey] {
			continue
		}
		matchedOld[p.oldKey] = true
		matchedNew[p.newKey] = true
		oe, ne := oldIdx[p.oldKey], newIdx[p.newKey]

		out = append(out, newSectionChange(SectionMoved, ne.section, oe, ne))
		if oe.section.Title != ne.section.Title {
			out = append(out, newSectionChange(TitleChanged, ne.section, oe, ne))
		}
		if oe.section.Content != ne.section.Content {
			out = append(out, newSectionChange(ContentChanged, ne.section, oe, ne))
		}
	}
	return out
}

// newSectionChange builds a SectionChange for section, pulling old/new path
// and content/title fields from whichever of oe/ne is non-nil.
func newSectionChange(kind SectionChangeKind, section *Section, oe, ne *entry) SectionChange {
	c := SectionChange{
		ID:        newChangeID(),
		SectionID: section.ID,
		Kind:      kind,
		Marker:    section.Marker,
	}
	if oe != nil {
		c.OldMarkerPath = oe.markerPath
		c.OldIDPath = oe.idPath
		c.OldContent = strPtr(oe.section.Content)
		c.OldTitle = strPtr(oe.section.Title)
		line := oe.section.Line
		c.OldLine = &line
	}
	if ne != nil {
		c.NewMarkerPath = ne.markerPath
		c.NewIDPath = ne.idPath
		c.NewContent = strPtr(ne.section.Content)
		c.NewTitle = strPtr(ne.section.Title)
		line := ne.section.Line
		c.NewLine = &line
	}
	return c
}

func strPtr(s string) *string { return &s }
