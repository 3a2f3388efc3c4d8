// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package identity resolves sequence-item identity keys from user-supplied
// rules and a built-in auto-detect fallback, the way a deployment manifest
// differ keys containers by name and a Kubernetes resource differ keys
// objects by kind+name, generalized to an arbitrary, rule-driven field.
package identity

import (
	"github.com/noamoss/yamly/internal/value"
)

// Rule is one identity rule: an array matches it iff the array's immediate
// parent key equals ArrayName. A conditional rule (WhenField set) only
// applies to items whose mapping contains WhenField with exactly WhenValue.
type Rule struct {
	ArrayName    string
	WhenField    string // empty means unconditional
	WhenValue    string
	IdentityField string
}

// Conditional reports whether r only applies to items matching a field/value
// predicate.
func (r Rule) Conditional() bool { return r.WhenField != "" }

// builtinFallbackFields is the built-in fallback identity field list, tried
// in order; the first field present (as a non-null scalar) in every mapping
// item of the array wins.
var builtinFallbackFields = []string{"id", "_id", "uuid", "key", "name", "host", "hostname"}

// Key is an identity key: a (field, canonical string) pair. Two items with
// equal Key values match.
type Key struct {
	Field string
	Value string
	set   bool
}

// None is the absence of an identity key.
var None = Key{}

// Present reports whether k denotes a resolved identity key.
func (k Key) Present() bool { return k.set }

// Equal reports whether two identity keys match.
func Equal(a, b Key) bool {
	return a.set && b.set && a.Field == b.Field && a.Value == b.Value
}

// Identify resolves, for each item of a sequence whose immediate parent key
// is arrayName, an identity key or None. items must be the Value payload of
// the array (value.Seq's first result).
func Identify(arrayName string, items []value.Value, rules []Rule) []Key {
	var conditional, unconditional []Rule
	for _, r := range rules {
		if r.ArrayName != arrayName {
			continue
		}
		if r.Conditional() {
			conditional = append(conditional, r)
		} else {
			unconditional = append(unconditional, r)
		}
	}

	keys := make([]Key, len(items))
	ruleKeys := make([]bool, len(items)) // true once an explicit rule resolved this item (even to None)
	for i, item := range items {
		if r, ok := firstMatchingConditional(item, conditional); ok {
			keys[i] = extractKey(item, r.IdentityField)
			ruleKeys[i] = true
			continue
		}
		if len(unconditional) > 0 {
			keys[i] = extractKey(item, unconditional[0].IdentityField)
			ruleKeys[i] = true
			continue
		}
	}

	// If every item was resolved by an explicit rule (conditional or
	// unconditional), we're done: auto-detect never runs.
	allRuled := true
	for _, r := range ruleKeys {
		if !r {
			allRuled = false
			break
		}
	}
	if allRuled && len(items) > 0 {
		return keys
	}
	if len(conditional) > 0 || len(unconditional) > 0 {
		// Some items matched no rule field/value. Rather than fall through to
		// auto-detect individually per item, apply auto-detect uniformly
		// across the whole array for the unresolved items.
	}

	field, ok := autoDetectField(items)
	if !ok {
		// Auto-detect failed. With no rule applied to any item, every item
		// is None; otherwise rule-resolved items keep their keys and the
		// remaining items stay None.
		if !anyRuled(ruleKeys) {
			return make([]Key, len(items))
		}
		return keys
	}
	for i, item := range items {
		if ruleKeys[i] {
			continue
		}
		keys[i] = extractKey(item, field)
	}
	return keys
}

func anyRuled(ruleKeys []bool) bool {
	for _, r := range ruleKeys {
		if r {
			return true
		}
	}
	return false
}

// firstMatchingConditional returns the first rule (in input order) whose
// WhenField/WhenValue predicate matches item.
func firstMatchingConditional(item value.Value, rules []Rule) (Rule, bool) {
	if item.Kind() != value.KindMap {
		return Rule{}, false
	}
	for _, r := range rules {
		fv, present := item.Get(r.WhenField)
		if !present || !fv.IsScalar() {
			continue
		}
		if value.CanonicalText(fv) == quoteIfString(r.WhenValue, fv) {
			return r, true
		}
	}
	return Rule{}, false
}

// quoteIfString renders the rule's WhenValue the way CanonicalText would
// render the actual field, so a string comparison of canonical forms is an
// exact-value comparison regardless of scalar subtype.
func quoteIfString(whenValue string, actual value.Value) string {
	if actual.Kind() == value.KindStr {
		return value.CanonicalText(value.Str(whenValue, 0))
	}
	return whenValue
}

func extractKey(item value.Value, field string) Key {
	if item.Kind() != value.KindMap || field == "" {
		return None
	}
	fv, present := item.Get(field)
	if !present || fv.Kind() == value.KindNull {
		return None
	}
	return Key{Field: field, Value: value.CanonicalText(fv), set: true}
}

// autoDetectField returns the first built-in field present as a non-null
// scalar in every mapping item of items.
func autoDetectField(items []value.Value) (string, bool) {
	for _, field := range builtinFallbackFields {
		allPresent := true
		for _, item := range items {
			if item.Kind() != value.KindMap {
				allPresent = false
				break
			}
			fv, present := item.Get(field)
			if !present || fv.Kind() == value.KindNull || !fv.IsScalar() {
				allPresent = false
				break
			}
		}
		if allPresent && len(items) > 0 {
			return field, true
		}
	}
	return "", false
}
