// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package value implements the tagged value model that every YAML document
// is parsed into: a recursive node carrying a kind tag, a payload, and the
// 1-based source line it came from.
package value

import (
	"fmt"
	"strings"
)

// Kind identifies which variant of Value a node holds.
type Kind int

// The closed set of Value variants.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindSeq
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindSeq:
		return "sequence"
	case KindMap:
		return "mapping"
	default:
		return "unknown"
	}
}

// Entry is one key/value pair of a Map value. Order of Entry slices is the
// document's insertion order and must be preserved by every producer and
// consumer of a Value.
type Entry struct {
	Key   string
	Value Value
}

// Value is a tagged node in the parsed document tree. Exactly one of the
// payload fields is meaningful, selected by Kind. Never construct a Value
// directly outside this package's constructors: doing so risks an
// inconsistent Kind/payload pairing.
type Value struct {
	kind Kind
	line int

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	seqVal   []Value
	mapVal   []Entry
}

// Null returns a Null value recorded at line.
func Null(line int) Value { return Value{kind: KindNull, line: line} }

// Bool returns a Bool value recorded at line.
func Bool(b bool, line int) Value { return Value{kind: KindBool, boolVal: b, line: line} }

// Int returns an Int value recorded at line.
func Int(i int64, line int) Value { return Value{kind: KindInt, intVal: i, line: line} }

// Float returns a Float value recorded at line.
func Float(f float64, line int) Value { return Value{kind: KindFloat, floatVal: f, line: line} }

// Str returns a Str value recorded at line.
func Str(s string, line int) Value { return Value{kind: KindStr, strVal: s, line: line} }

// Seq returns a Seq value recorded at line. The slice is used as-is; callers
// must not mutate it afterwards.
func Seq(items []Value, line int) Value { return Value{kind: KindSeq, seqVal: items, line: line} }

// Map returns a Map value recorded at line, preserving entries' order. The
// slice is used as-is; callers must not mutate it afterwards.
func Map(entries []Entry, line int) Value { return Value{kind: KindMap, mapVal: entries, line: line} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Line reports the 1-based source line v was parsed from.
func (v Value) Line() int { return v.line }

// IsScalar reports whether v is Null, Bool, Int, Float, or Str.
func (v Value) IsScalar() bool {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindStr:
		return true
	default:
		return false
	}
}

// Bool returns the payload of a Bool value; the second result is false for
// any other Kind.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolVal, true
}

// Int returns the payload of an Int value; the second result is false for
// any other Kind.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.intVal, true
}

// Float returns the payload of a Float value; the second result is false for
// any other Kind.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.floatVal, true
}

// Str returns the payload of a Str value; the second result is false for any
// other Kind.
func (v Value) Str() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.strVal, true
}

// Seq returns the payload of a Seq value; the second result is false for any
// other Kind. The returned slice must not be mutated.
func (v Value) Seq() ([]Value, bool) {
	if v.kind != KindSeq {
		return nil, false
	}
	return v.seqVal, true
}

// Map returns the payload of a Map value; the second result is false for any
// other Kind. The returned slice preserves insertion order and must not be
// mutated.
func (v Value) Map() ([]Entry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.mapVal, true
}

// Get returns the value of key in a Map value, and whether key was present.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether a and b are structurally equal, ignoring source
// line. Map equality ignores key order: two mappings with the same key/value
// pairs in different orders are equal, though order is preserved for
// serialization and diffing purposes elsewhere.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindFloat:
		return a.floatVal == b.floatVal
	case KindStr:
		return a.strVal == b.strVal
	case KindSeq:
		if len(a.seqVal) != len(b.seqVal) {
			return false
		}
		for i := range a.seqVal {
			if !Equal(a.seqVal[i], b.seqVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.mapVal) != len(b.mapVal) {
			return false
		}
		bIdx := make(map[string]Value, len(b.mapVal))
		for _, e := range b.mapVal {
			bIdx[e.Key] = e.Value
		}
		for _, e := range a.mapVal {
			bv, ok := bIdx[e.Key]
			if !ok || !Equal(e.Value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CanonicalText renders v as a stable textual projection: scalars print
// their literal form; containers serialise as stable JSON-like text with
// mapping keys in insertion order. It is the basis of the similarity kernel
// and must never depend on map iteration order.
func CanonicalText(v Value) string {
	var sb strings.Builder
	writeCanonical(&sb, v)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.boolVal {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindInt:
		sb.WriteString(fmt.Sprintf("%d", v.intVal))
	case KindFloat:
		sb.WriteString(fmt.Sprintf("%g", v.floatVal))
	case KindStr:
		sb.WriteString(fmt.Sprintf("%q", v.strVal))
	case KindSeq:
		sb.WriteByte('[')
		for i, item := range v.seqVal {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeCanonical(sb, item)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, e := range v.mapVal {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%q", e.Key))
			sb.WriteString(": ")
			writeCanonical(sb, e.Value)
		}
		sb.WriteByte('}')
	}
}

// SortedKeys returns the keys of a Map value's entries in insertion order.
// This is not a sort: the name reflects that the result is the stable key
// list callers can rely on, as opposed to Go's randomized map iteration.
func SortedKeys(entries []Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// UnionKeys returns the keys present in either a or b, in old-then-new
// insertion order: a's keys in a's order, then any new b keys in b's order.
func UnionKeys(a, b []Entry) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, e := range a {
		if !seen[e.Key] {
			seen[e.Key] = true
			out = append(out, e.Key)
		}
	}
	for _, e := range b {
		if !seen[e.Key] {
			seen[e.Key] = true
			out = append(out, e.Key)
		}
	}
	return out
}

// Lookup builds a key->Value index without altering iteration order
// elsewhere; used internally by the generic engine.
func Lookup(entries []Entry) map[string]Value {
	idx := make(map[string]Value, len(entries))
	for _, e := range entries {
		idx[e.Key] = e.Value
	}
	return idx
}
