// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"
)

// StepKind distinguishes a Path step that descends into a mapping field from
// one that descends into a sequence index.
type StepKind int

// The two kinds of Path step.
const (
	StepField StepKind = iota
	StepIndex
)

// Step is one hop of a Path: either a mapping field name or a sequence
// index.
type Step struct {
	Kind  StepKind
	Field string
	Index int
}

// Field returns a StepField step.
func Field(name string) Step { return Step{Kind: StepField, Field: name} }

// Index returns a StepIndex step.
func Index(i int) Step { return Step{Kind: StepIndex, Index: i} }

// Path is a sequence of steps from the document root to a node. Paths label
// changes; they are not stored as entities of their own.
type Path []Step

// Root is the empty path, rendered as "$".
func Root() Path { return nil }

// Append returns a new Path with step appended, leaving p untouched.
func (p Path) Append(s Step) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}

// String renders p using "." between fields and "[i]" for indices, with a
// leading "$" for the root.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, s := range p {
		switch s.Kind {
		case StepField:
			sb.WriteByte('.')
			sb.WriteString(s.Field)
		case StepIndex:
			sb.WriteString(fmt.Sprintf("[%d]", s.Index))
		}
	}
	return sb.String()
}

// Equal reports whether p and q are the same sequence of steps.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Depth returns the number of steps in p.
func (p Path) Depth() int { return len(p) }

// Less gives Path a deterministic total order: shallower paths first, then
// lexicographic comparison of each step's textual form. Used by the global
// move-detection pass to break similarity ties.
func (p Path) Less(q Path) bool {
	if len(p) != len(q) {
		return len(p) < len(q)
	}
	return p.String() < q.String()
}
