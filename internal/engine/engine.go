// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine is the façade tying the parser, validator, router, the two
// diff engines, and the line-number attributor together behind two
// operations, diff and validate. Formatting is declared here as the
// Formatter contract and implemented by internal/format.
package engine

import (
	"fmt"

	"github.com/noamoss/yamly/internal/generic"
	"github.com/noamoss/yamly/internal/identity"
	"github.com/noamoss/yamly/internal/legal"
	"github.com/noamoss/yamly/internal/legalschema"
	"github.com/noamoss/yamly/internal/lineattr"
	"github.com/noamoss/yamly/internal/router"
	"github.com/noamoss/yamly/internal/value"
	"github.com/noamoss/yamly/internal/yamlsrc"
)

// Parser is the external parser contract.
type Parser interface {
	Parse(text []byte) (value.Value, error)
}

// Validator is the external legal-document validator contract.
type Validator interface {
	Validate(v value.Value) (*legal.Document, []legalschema.ValidationError)
}

// Formatter renders a Result in one of the supported styles.
type Formatter interface {
	Format(result Result, style string, filters Filters) (string, error)
}

// Result is the outcome of one diff invocation: exactly one of Generic or
// Legal is populated, selected by Mode.
type Result struct {
	Mode    router.Mode
	Generic []generic.Change
	Legal   []legal.SectionChange
}

// Filters narrows what a Formatter renders: a kind subset, a path prefix, or
// dropping UNCHANGED/SECTION_UNCHANGED records. Filtering is formatting-only
// and never changes what the engine computed.
type Filters struct {
	Kinds         map[string]bool // empty means no kind restriction
	PathPrefix    string
	DropUnchanged bool
}

// BadIdentityRuleError reports a rule referencing an empty identity_field or
// a non-scalar when_value.
type BadIdentityRuleError struct {
	ArrayName string
	Reason    string
}

func (e *BadIdentityRuleError) Error() string {
	return fmt.Sprintf("bad identity rule for array %q: %s", e.ArrayName, e.Reason)
}

// ValidationFailedError wraps the legalschema validator's collected errors
// as the single outcome of a failed legal-document diff or validate call.
type ValidationFailedError struct {
	Errors []legalschema.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("document failed validation with %d error(s)", len(e.Errors))
}

// Engine bundles the collaborators Diff/Validate/Format need, so tests can
// substitute mocks for Parser/Validator (see internal/mocks) without
// reaching into package-level state.
type Engine struct {
	Parser    Parser
	Validator Validator
}

// New returns an Engine wired to the real yamlsrc parser and legalschema
// validator.
func New() *Engine {
	return &Engine{Parser: realParser{}, Validator: realValidator{}}
}

type realParser struct{}

func (realParser) Parse(text []byte) (value.Value, error) { return yamlsrc.Parse(text) }

type realValidator struct{}

func (realValidator) Validate(v value.Value) (*legal.Document, []legalschema.ValidationError) {
	return legalschema.Validate(v)
}

// Diff implements the engine surface's diff operation: parse both
// documents, route to a mode, run the matching engine, and attribute line
// numbers (and, in marker mode, section YAML text).
func (e *Engine) Diff(oldText, newText []byte, hint router.Hint, rules []identity.Rule) (Result, error) {
	oldVal, err := e.Parser.Parse(oldText)
	if err != nil {
		return Result{}, err
	}
	newVal, err := e.Parser.Parse(newText)
	if err != nil {
		return Result{}, err
	}

	if err := validateRules(rules); err != nil {
		return Result{}, err
	}

	mode := router.Route(oldVal, newVal, hint)
	if mode == router.Generic {
		changes := generic.Diff(oldVal, newVal, rules)
		return Result{Mode: mode, Generic: changes}, nil
	}

	oldDoc, errs := e.Validator.Validate(oldVal)
	if len(errs) > 0 {
		return Result{}, &ValidationFailedError{Errors: errs}
	}
	newDoc, errs := e.Validator.Validate(newVal)
	if len(errs) > 0 {
		return Result{}, &ValidationFailedError{Errors: errs}
	}

	changes, err := legal.Diff(oldDoc, newDoc)
	if err != nil {
		return Result{}, err
	}
	lineattr.PopulateSectionYAML(changes, oldDoc, newDoc)
	return Result{Mode: mode, Legal: changes}, nil
}

// Validate implements the engine surface's validate operation.
func (e *Engine) Validate(text []byte) (*legal.Document, error) {
	v, err := e.Parser.Parse(text)
	if err != nil {
		return nil, err
	}
	doc, errs := e.Validator.Validate(v)
	if len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}
	return doc, nil
}

func validateRules(rules []identity.Rule) error {
	for _, r := range rules {
		if r.IdentityField == "" {
			return &BadIdentityRuleError{ArrayName: r.ArrayName, Reason: "identity_field must not be empty"}
		}
	}
	return nil
}
