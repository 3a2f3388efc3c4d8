// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"sort"

	"github.com/noamoss/yamly/internal/similarity"
)

// detectRenames implements phase 2: within each parent path (processed in
// first-visited order), greedily pair removed/added key candidates with
// different names and similarity >= 0.90, highest similarity first. Matched
// candidates are removed from e.removedKeys/e.addedKeys so they don't flow
// into phase 3.
func (e *engine) detectRenames() []Change {
	var renames []Change
	removedConsumed := make([]bool, len(e.removedKeys))
	addedConsumed := make([]bool, len(e.addedKeys))

	for _, parentKey := range e.parentOrder {
		type candRef struct {
			idx int
			kc  keyCandidate
		}
		var removed, added []candRef
		for i, kc := range e.removedKeys {
			if !removedConsumed[i] && kc.parentPath.String() == parentKey {
				removed = append(removed, candRef{i, kc})
			}
		}
		for j, kc := range e.addedKeys {
			if !addedConsumed[j] && kc.parentPath.String() == parentKey {
				added = append(added, candRef{j, kc})
			}
		}

		type renamePair struct {
			r, a  candRef
			score float64
		}
		var pairs []renamePair
		for _, r := range removed {
			for _, a := range added {
				if r.kc.key == a.kc.key {
					continue
				}
				score := similarity.Score(r.kc.val, a.kc.val)
				if score >= renameThreshold {
					pairs = append(pairs, renamePair{r, a, score})
				}
			}
		}
		sort.Slice(pairs, func(x, y int) bool { return pairs[x].score > pairs[y].score })

		for _, p := range pairs {
			if removedConsumed[p.r.idx] || addedConsumed[p.a.idx] {
				continue
			}
			removedConsumed[p.r.idx] = true
			addedConsumed[p.a.idx] = true
			rc, ac := p.r.kc, p.a.kc
			c := Change{
				Kind:     KeyRenamed,
				Path:     rc.parentPath,
				OldKey:   strPtr(rc.key),
				NewKey:   strPtr(ac.key),
				OldValue: valPtr(rc.val),
				NewValue: valPtr(ac.val),
				OldLine:  intPtr(rc.line),
				NewLine:  intPtr(ac.line),
			}
			c.ID = newID()
			renames = append(renames, c)
		}
	}

	e.removedKeys = filterOutConsumedKeys(e.removedKeys, removedConsumed)
	e.addedKeys = filterOutConsumedKeys(e.addedKeys, addedConsumed)
	return renames
}

func filterOutConsumedKeys(cands []keyCandidate, consumed []bool) []keyCandidate {
	out := cands[:0:0]
	for i, c := range cands {
		if !consumed[i] {
			out = append(out, c)
		}
	}
	return out
}
