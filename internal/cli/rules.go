// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/google/shlex"
	"github.com/imdario/mergo"

	"github.com/noamoss/yamly/internal/identity"
)

// parseIdentityRule parses one --identity-rule flag value against the
// grammar ARRAY ":" FIELD [ ":" WHEN_FIELD "=" WHEN_VALUE ], where a
// backslash escapes a literal ":" or "=" inside a field or value. Rather
// than hand-roll a second escaping lexer, unescaped separators are turned
// into spaces and the result is handed to shlex, which already knows how
// to strip backslash escapes and respect them as literal characters.
func parseIdentityRule(raw string) (identity.Rule, error) {
	spaced := despecialize(raw)
	tokens, err := shlex.Split(spaced)
	if err != nil {
		return identity.Rule{}, &errBadIdentityRule{Raw: raw, Reason: err.Error()}
	}

	switch len(tokens) {
	case 2:
		if tokens[1] == "" {
			return identity.Rule{}, &errBadIdentityRule{Raw: raw, Reason: "identity_field must not be empty"}
		}
		return identity.Rule{ArrayName: tokens[0], IdentityField: tokens[1]}, nil
	case 4:
		if tokens[1] == "" {
			return identity.Rule{}, &errBadIdentityRule{Raw: raw, Reason: "identity_field must not be empty"}
		}
		return identity.Rule{
			ArrayName:     tokens[0],
			IdentityField: tokens[1],
			WhenField:     tokens[2],
			WhenValue:     tokens[3],
		}, nil
	default:
		return identity.Rule{}, &errBadIdentityRule{Raw: raw, Reason: "expected ARRAY:FIELD[:WHEN_FIELD=WHEN_VALUE]"}
	}
}

// despecialize turns every unescaped ':' or '=' in raw into a space, so
// that shlex.Split treats them as token separators; an escaped separator
// ("\:" or "\=") is left for shlex itself to unescape into a literal
// character.
func despecialize(raw string) string {
	var sb strings.Builder
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && (runes[i+1] == ':' || runes[i+1] == '=') {
			sb.WriteRune(r)
			sb.WriteRune(runes[i+1])
			i++
			continue
		}
		if r == ':' || r == '=' {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// parseIdentityRules parses every --identity-rule flag value.
func parseIdentityRules(raw []string) ([]identity.Rule, error) {
	parsed := make([]identity.Rule, 0, len(raw))
	for _, r := range raw {
		rule, err := parseIdentityRule(r)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, rule)
	}
	return parsed, nil
}

// mergeIdentityRules merges flag-supplied rules over the config file's
// default rules, grouped by array name, with mergo's override semantics:
// mergo.Merge only fills keys absent from dst, so an array with at least
// one flag rule (conditional rules may repeat an array name with
// different WHEN predicates) keeps exactly its flag rules, while an array
// with no flag rule at all falls through to its config default instead of
// losing it outright.
func mergeIdentityRules(flagRules, configRules []identity.Rule) ([]identity.Rule, error) {
	dst := groupByArray(flagRules)
	src := groupByArray(configRules)
	if err := mergo.Merge(&dst, src); err != nil {
		return nil, err
	}

	out := make([]identity.Rule, 0, len(flagRules)+len(configRules))
	for _, group := range dst {
		out = append(out, group...)
	}
	return out, nil
}

func groupByArray(rules []identity.Rule) map[string][]identity.Rule {
	m := make(map[string][]identity.Rule, len(rules))
	for _, r := range rules {
		m[r.ArrayName] = append(m[r.ArrayName], r)
	}
	return m
}
