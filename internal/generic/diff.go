// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package generic

import (
	"github.com/noamoss/yamly/internal/identity"
	"github.com/noamoss/yamly/internal/value"
)

const (
	highSimilarityThreshold = 0.90
	lowSimilarityThreshold  = 0.70
	renameThreshold         = 0.90
	keyMoveThreshold        = 0.90
	itemMoveContentFallback = 0.95
)

// keyCandidate is a key present on only one side of a mapping, deferred for
// rename (phase 2) then move (phase 3) detection.
type keyCandidate struct {
	parentPath value.Path
	key        string
	val        value.Value
	line       int
}

// itemCandidate is a sequence item present on only one side, deferred for
// move (phase 3) detection; items never participate in rename detection.
type itemCandidate struct {
	arrayPath value.Path
	origIndex int
	val       value.Value
	line      int
	idKey     identity.Key
}

type engine struct {
	rules []identity.Rule

	changes []Change

	removedKeys    []keyCandidate
	addedKeys      []keyCandidate
	parentOrder    []string // parentPath.String(), first-visited order
	seenParent     map[string]bool

	removedItems []itemCandidate
	addedItems   []itemCandidate
}

// Diff walks old and new in lockstep and returns the full, ordered change
// list: phase 1's directly-emitted changes, then phase 2 renames (in
// first-visited parent-path order), then phase 3 moves (descending
// similarity), then any residual adds/removes left unmatched by phase 3.
func Diff(old, new value.Value, rules []identity.Rule) []Change {
	e := &engine{rules: rules, seenParent: make(map[string]bool)}
	e.walk(old, new, value.Root())

	renames := e.detectRenames()
	e.changes = append(e.changes, renames...)

	moves := e.detectMoves()
	e.changes = append(e.changes, moves...)

	e.changes = append(e.changes, e.residuals()...)

	return e.changes
}

func (e *engine) emit(c Change) {
	c.ID = newID()
	e.changes = append(e.changes, c)
}

func (e *engine) recordParent(p value.Path) {
	key := p.String()
	if !e.seenParent[key] {
		e.seenParent[key] = true
		e.parentOrder = append(e.parentOrder, key)
	}
}

// walk implements phase 1: recursive local diff over scalars, mappings, and
// sequences. It emits VALUE_CHANGED/TYPE_CHANGED/UNCHANGED directly and
// defers mapping add/remove candidates to the engine's candidate lists.
func (e *engine) walk(old, new value.Value, path value.Path) {
	if old.Kind() != new.Kind() || (old.IsScalar() && new.IsScalar() && scalarSubtype(old) != scalarSubtype(new)) {
		e.emit(Change{
			Kind:     TypeChanged,
			Path:     path,
			OldValue: valPtr(old),
			NewValue: valPtr(new),
			OldLine:  intPtr(old.Line()),
			NewLine:  intPtr(new.Line()),
		})
		return
	}

	switch old.Kind() {
	case value.KindMap:
		e.walkMap(old, new, path)
	case value.KindSeq:
		e.walkSeq(old, new, path)
	default:
		if value.Equal(old, new) {
			e.emit(Change{
				Kind:     Unchanged,
				Path:     path,
				OldValue: valPtr(old),
				NewValue: valPtr(new),
				OldLine:  intPtr(old.Line()),
				NewLine:  intPtr(new.Line()),
			})
		} else {
			e.emit(Change{
				Kind:     ValueChanged,
				Path:     path,
				OldValue: valPtr(old),
				NewValue: valPtr(new),
				OldLine:  intPtr(old.Line()),
				NewLine:  intPtr(new.Line()),
			})
		}
	}
}

// scalarSubtype distinguishes strings from numbers from bools from null for
// the purposes of TYPE_CHANGED: strings and numbers are distinct types even
// when their canonical text would otherwise coincide.
func scalarSubtype(v value.Value) value.Kind { return v.Kind() }

func (e *engine) walkMap(old, new value.Value, path value.Path) {
	oldEntries, _ := old.Map()
	newEntries, _ := new.Map()
	oldIdx := value.Lookup(oldEntries)
	newIdx := value.Lookup(newEntries)

	for _, key := range value.UnionKeys(oldEntries, newEntries) {
		ov, inOld := oldIdx[key]
		nv, inNew := newIdx[key]
		childPath := path.Append(value.Field(key))
		switch {
		case inOld && inNew:
			e.walk(ov, nv, childPath)
		case inNew:
			e.recordParent(path)
			e.addedKeys = append(e.addedKeys, keyCandidate{parentPath: path, key: key, val: nv, line: nv.Line()})
		default:
			e.recordParent(path)
			e.removedKeys = append(e.removedKeys, keyCandidate{parentPath: path, key: key, val: ov, line: ov.Line()})
		}
	}
}

func (e *engine) walkSeq(old, new value.Value, path value.Path) {
	oldItems, _ := old.Seq()
	newItems, _ := new.Seq()
	arrayName := arrayNameOf(path)

	matchArray(e, oldItems, newItems, path, arrayName)
}

// arrayNameOf returns the parent key of an array's path, the "array_name"
// the identity resolver matches rules against. A sequence nested directly in
// another sequence has no field name and resolves to "".
func arrayNameOf(p value.Path) string {
	if len(p) == 0 {
		return ""
	}
	last := p[len(p)-1]
	if last.Kind == value.StepField {
		return last.Field
	}
	return ""
}
