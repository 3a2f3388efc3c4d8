// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"sort"

	"github.com/noamoss/yamly/internal/identity"
	"github.com/noamoss/yamly/internal/similarity"
	"github.com/noamoss/yamly/internal/value"
)

// detectMoves implements phase 3: global move detection over the candidate
// pools left by phase 1 (items) and phase 2 (keys). Matched candidates are
// removed from the engine's pools so residuals() only sees what remains
// unmatched.
func (e *engine) detectMoves() []Change {
	keyMoves, removedKeysLeft, addedKeysLeft := detectKeyMoves(e.removedKeys, e.addedKeys)
	e.removedKeys = removedKeysLeft
	e.addedKeys = addedKeysLeft

	itemMoves, removedItemsLeft, addedItemsLeft := detectItemMoves(e.removedItems, e.addedItems)
	e.removedItems = removedItemsLeft
	e.addedItems = addedItemsLeft

	moves := append(keyMoves, itemMoves...)
	sort.SliceStable(moves, func(i, j int) bool { return moveSortKey(moves[i]) > moveSortKey(moves[j]) })
	return moves
}

func moveSortKey(c Change) float64 {
	if c.OldValue == nil || c.NewValue == nil {
		return 0
	}
	return similarityOf(*c.OldValue, *c.NewValue)
}

func similarityOf(a, b value.Value) float64 { return similarity.Score(a, b) }

type keyMoveCandidate struct {
	removedIdx, addedIdx int
	score                float64
}

func detectKeyMoves(removed, added []keyCandidate) (moves []Change, removedLeft, addedLeft []keyCandidate) {
	removedConsumed := make([]bool, len(removed))
	addedConsumed := make([]bool, len(added))

	var pairs []keyMoveCandidate
	for i, r := range removed {
		for j, a := range added {
			if r.key != a.key {
				continue
			}
			if r.parentPath.Equal(a.parentPath) {
				continue
			}
			score := similarity.Score(r.val, a.val)
			if score >= keyMoveThreshold {
				pairs = append(pairs, keyMoveCandidate{i, j, score})
			}
		}
	}
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].score != pairs[y].score {
			return pairs[x].score > pairs[y].score
		}
		rx, ry := removed[pairs[x].removedIdx], removed[pairs[y].removedIdx]
		if rx.parentPath.Depth() != ry.parentPath.Depth() {
			return rx.parentPath.Depth() < ry.parentPath.Depth()
		}
		return rx.parentPath.Less(ry.parentPath)
	})

	for _, p := range pairs {
		if removedConsumed[p.removedIdx] || addedConsumed[p.addedIdx] {
			continue
		}
		removedConsumed[p.removedIdx] = true
		addedConsumed[p.addedIdx] = true
		r, a := removed[p.removedIdx], added[p.addedIdx]
		oldPath := r.parentPath.Append(value.Field(r.key))
		newPath := a.parentPath.Append(value.Field(a.key))
		c := Change{
			Kind:     KeyMoved,
			Path:     newPath,
			OldPath:  pathPtr(oldPath),
			NewPath:  pathPtr(newPath),
			OldKey:   strPtr(r.key),
			NewKey:   strPtr(a.key),
			OldValue: valPtr(r.val),
			NewValue: valPtr(a.val),
			OldLine:  intPtr(r.line),
			NewLine:  intPtr(a.line),
		}
		c.ID = newID()
		moves = append(moves, c)
	}

	return moves, filterOutConsumedKeys(removed, removedConsumed), filterOutConsumedKeys(added, addedConsumed)
}

type itemMoveCandidate struct {
	removedIdx, addedIdx int
	score                float64
}

func detectItemMoves(removed, added []itemCandidate) (moves []Change, removedLeft, addedLeft []itemCandidate) {
	removedConsumed := make([]bool, len(removed))
	addedConsumed := make([]bool, len(added))

	var pairs []itemMoveCandidate
	for i, r := range removed {
		for j, a := range added {
			if r.arrayPath.Equal(a.arrayPath) && r.origIndex == a.origIndex {
				continue
			}
			switch {
			case r.idKey.Present() && a.idKey.Present():
				if identity.Equal(r.idKey, a.idKey) {
					pairs = append(pairs, itemMoveCandidate{i, j, 1.0})
				}
			default:
				if !similarity.IsEligibleForMatch(r.val) || !similarity.IsEligibleForMatch(a.val) {
					continue
				}
				score := similarity.Score(r.val, a.val)
				if score >= itemMoveContentFallback {
					pairs = append(pairs, itemMoveCandidate{i, j, score})
				}
			}
		}
	}
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].score != pairs[y].score {
			return pairs[x].score > pairs[y].score
		}
		rx, ry := removed[pairs[x].removedIdx], removed[pairs[y].removedIdx]
		if rx.arrayPath.Depth() != ry.arrayPath.Depth() {
			return rx.arrayPath.Depth() < ry.arrayPath.Depth()
		}
		return rx.arrayPath.Less(ry.arrayPath)
	})

	for _, p := range pairs {
		if removedConsumed[p.removedIdx] || addedConsumed[p.addedIdx] {
			continue
		}
		removedConsumed[p.removedIdx] = true
		addedConsumed[p.addedIdx] = true
		r, a := removed[p.removedIdx], added[p.addedIdx]
		oldPath := r.arrayPath.Append(value.Index(r.origIndex))
		newPath := a.arrayPath.Append(value.Index(a.origIndex))
		c := Change{
			Kind:     ItemMoved,
			Path:     newPath,
			OldPath:  pathPtr(oldPath),
			NewPath:  pathPtr(newPath),
			OldValue: valPtr(r.val),
			NewValue: valPtr(a.val),
			OldLine:  intPtr(r.line),
			NewLine:  intPtr(a.line),
		}
		c.ID = newID()
		moves = append(moves, c)
	}

	return moves, filterOutConsumedItems(removed, removedConsumed), filterOutConsumedItems(added, addedConsumed)
}

func filterOutConsumedItems(cands []itemCandidate, consumed []bool) []itemCandidate {
	out := cands[:0:0]
	for i, c := range cands {
		if !consumed[i] {
			out = append(out, c)
		}
	}
	return out
}

// residuals implements the tail of phase 3: candidates that matched no
// rename and no move become KEY_ADDED/KEY_REMOVED/ITEM_ADDED/ITEM_REMOVED,
// old then new, each in original candidate order.
func (e *engine) residuals() []Change {
	var out []Change
	for _, r := range e.removedKeys {
		c := Change{
			Kind:    KeyRemoved,
			Path:    r.parentPath,
			OldKey:  strPtr(r.key),
			OldValue: valPtr(r.val),
			OldLine: intPtr(r.line),
		}
		c.ID = newID()
		out = append(out, c)
	}
	for _, a := range e.addedKeys {
		c := Change{
			Kind:    KeyAdded,
			Path:    a.parentPath,
			NewKey:  strPtr(a.key),
			NewValue: valPtr(a.val),
			NewLine: intPtr(a.line),
		}
		c.ID = newID()
		out = append(out, c)
	}
	for _, r := range e.removedItems {
		c := Change{
			Kind:    ItemRemoved,
			Path:    r.arrayPath.Append(value.Index(r.origIndex)),
			OldValue: valPtr(r.val),
			OldLine: intPtr(r.line),
		}
		c.ID = newID()
		out = append(out, c)
	}
	for _, a := range e.addedItems {
		c := Change{
			Kind:    ItemAdded,
			Path:    a.arrayPath.Append(value.Index(a.origIndex)),
			NewValue: valPtr(a.val),
			NewLine: intPtr(a.line),
		}
		c.ID = newID()
		out = append(out, c)
	}
	return out
}
