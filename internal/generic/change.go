// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package generic implements the three-phase tree diff engine: recursive
// local diff over mappings/sequences/scalars, rename detection across
// sibling add/remove candidates, and a global move-detection pass across the
// whole tree.
package generic

import (
	"github.com/google/uuid"

	"github.com/noamoss/yamly/internal/value"
)

// ChangeKind enumerates the closed set of generic change variants.
type ChangeKind int

// The full set of GenericChange kinds.
const (
	ValueChanged ChangeKind = iota
	TypeChanged
	KeyAdded
	KeyRemoved
	KeyRenamed
	KeyMoved
	ItemAdded
	ItemRemoved
	ItemChanged
	ItemMoved
	Unchanged
)

func (k ChangeKind) String() string {
	switch k {
	case ValueChanged:
		return "VALUE_CHANGED"
	case TypeChanged:
		return "TYPE_CHANGED"
	case KeyAdded:
		return "KEY_ADDED"
	case KeyRemoved:
		return "KEY_REMOVED"
	case KeyRenamed:
		return "KEY_RENAMED"
	case KeyMoved:
		return "KEY_MOVED"
	case ItemAdded:
		return "ITEM_ADDED"
	case ItemRemoved:
		return "ITEM_REMOVED"
	case ItemChanged:
		return "ITEM_CHANGED"
	case ItemMoved:
		return "ITEM_MOVED"
	case Unchanged:
		return "UNCHANGED"
	default:
		return "UNKNOWN"
	}
}

// Change is one record of the generic engine's output. Optionality of the
// old_*/new_* fields is governed by Kind.
type Change struct {
	ID       string
	Kind     ChangeKind
	Path     value.Path
	OldPath  *value.Path
	NewPath  *value.Path
	OldKey   *string
	NewKey   *string
	OldValue *value.Value
	NewValue *value.Value
	OldLine  *int
	NewLine  *int
}

func newID() string { return uuid.NewString() }

func intPtr(i int) *int          { return &i }
func strPtr(s string) *string    { return &s }
func pathPtr(p value.Path) *value.Path { return &p }
func valPtr(v value.Value) *value.Value { return &v }
