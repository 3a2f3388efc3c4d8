// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"sort"

	"github.com/noamoss/yamly/internal/identity"
	"github.com/noamoss/yamly/internal/similarity"
	"github.com/noamoss/yamly/internal/value"
)

// matchArray implements the four-phase array matcher: identity match,
// high-similarity match (>=0.90), low-similarity match (>=0.70), positional
// equality, leaving residuals for global move detection.
func matchArray(e *engine, oldItems, newItems []value.Value, path value.Path, arrayName string) {
	oldIDs := identity.Identify(arrayName, oldItems, e.rules)
	newIDs := identity.Identify(arrayName, newItems, e.rules)

	oldMatched := make([]bool, len(oldItems))
	newMatched := make([]bool, len(newItems))

	// Phase 1: identity match.
	for i := range oldItems {
		if !oldIDs[i].Present() {
			continue
		}
		for j := range newItems {
			if newMatched[j] || !newIDs[j].Present() {
				continue
			}
			if identity.Equal(oldIDs[i], newIDs[j]) {
				oldMatched[i], newMatched[j] = true, true
				recurseArrayItem(e, oldItems[i], newItems[j], path, i, j)
				break
			}
		}
	}

	// Phase 2 & 3: greedy similarity matching at descending thresholds.
	greedySimilarityMatch(e, oldItems, newItems, path, oldMatched, newMatched, highSimilarityThreshold)
	greedySimilarityMatch(e, oldItems, newItems, path, oldMatched, newMatched, lowSimilarityThreshold)

	// Phase 4: positional equality among what remains.
	for i := range oldItems {
		if oldMatched[i] || i >= len(newItems) || newMatched[i] {
			continue
		}
		if value.Equal(oldItems[i], newItems[i]) {
			oldMatched[i], newMatched[i] = true, true
			e.emit(Change{
				Kind:     Unchanged,
				Path:     path.Append(value.Index(i)),
				OldValue: valPtr(oldItems[i]),
				NewValue: valPtr(newItems[i]),
				OldLine:  intPtr(oldItems[i].Line()),
				NewLine:  intPtr(newItems[i].Line()),
			})
		}
	}

	// Phase 5: residuals, deferred to the global move pool, old then new, in
	// original index order.
	for i := range oldItems {
		if oldMatched[i] {
			continue
		}
		e.removedItems = append(e.removedItems, itemCandidate{
			arrayPath: path, origIndex: i, val: oldItems[i], line: oldItems[i].Line(), idKey: oldIDs[i],
		})
	}
	for j := range newItems {
		if newMatched[j] {
			continue
		}
		e.addedItems = append(e.addedItems, itemCandidate{
			arrayPath: path, origIndex: j, val: newItems[j], line: newItems[j].Line(), idKey: newIDs[j],
		})
	}
}

// recurseArrayItem recurses a matched pair of array items and emits an
// ITEM_CHANGED wrapper only when the recursion produced at least one real
// descendant change; an all-UNCHANGED recursion gets no wrapper at all,
// since the descendant UNCHANGED records already satisfy coverage on their
// own. Scalar items skip the wrapper logic entirely: there's no descendant
// path distinct from the item's own, so walk's single record at itemPath
// already covers it.
func recurseArrayItem(e *engine, old, new value.Value, arrayPath value.Path, oldIdx, newIdx int) {
	itemPath := arrayPath.Append(value.Index(newIdx))

	if old.Kind() != value.KindMap && old.Kind() != value.KindSeq {
		// A scalar item has no descendant path distinct from its own: walk
		// already emitted the single VALUE_CHANGED/TYPE_CHANGED/UNCHANGED
		// record that fully covers it. Wrapping that in ITEM_CHANGED would
		// put two records on the same path.
		e.walk(old, new, itemPath)
		return
	}

	before := len(e.changes)
	beforeRemovedKeys, beforeAddedKeys := len(e.removedKeys), len(e.addedKeys)
	beforeRemovedItems, beforeAddedItems := len(e.removedItems), len(e.addedItems)

	e.walk(old, new, itemPath)

	anyChange := false
	for _, c := range e.changes[before:] {
		if c.Kind != Unchanged {
			anyChange = true
			break
		}
	}
	if !anyChange && (len(e.removedKeys) != beforeRemovedKeys || len(e.addedKeys) != beforeAddedKeys ||
		len(e.removedItems) != beforeRemovedItems || len(e.addedItems) != beforeAddedItems) {
		anyChange = true
	}

	if !anyChange {
		// No descendant change: the item gets no ITEM_CHANGED wrapper.
		// Coverage is already satisfied by the per-field UNCHANGED records
		// walk emitted above.
		return
	}

	e.emit(Change{
		Kind:     ItemChanged,
		Path:     itemPath,
		OldValue: valPtr(old),
		NewValue: valPtr(new),
		OldLine:  intPtr(old.Line()),
		NewLine:  intPtr(new.Line()),
	})
}

type similarityPair struct {
	i, j  int
	score float64
}

// greedySimilarityMatch computes a pairwise similarity matrix among
// still-unmatched items and greedily accepts pairs at or above threshold,
// largest score first, ties broken by earlier original position.
func greedySimilarityMatch(e *engine, oldItems, newItems []value.Value, path value.Path, oldMatched, newMatched []bool, threshold float64) {
	var pairs []similarityPair
	for i := range oldItems {
		if oldMatched[i] {
			continue
		}
		for j := range newItems {
			if newMatched[j] {
				continue
			}
			score := similarity.Score(oldItems[i], newItems[j])
			if score >= threshold {
				pairs = append(pairs, similarityPair{i: i, j: j, score: score})
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].score != pairs[b].score {
			return pairs[a].score > pairs[b].score
		}
		if pairs[a].i != pairs[b].i {
			return pairs[a].i < pairs[b].i
		}
		return pairs[a].j < pairs[b].j
	})
	for _, p := range pairs {
		if oldMatched[p.i] || newMatched[p.j] {
			continue
		}
		oldMatched[p.i], newMatched[p.j] = true, true
		recurseArrayItem(e, oldItems[p.i], newItems[p.j], path, p.i, p.j)
	}
}
