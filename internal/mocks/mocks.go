// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package mocks hand-writes golang/mock-shaped mocks for engine.Parser and
// engine.Validator, in the style mockgen would generate (a struct wrapping
// a *gomock.Controller, a recorder type, and an EXPECT() builder), so
// internal/engine's tests can fake parse/validate failures without
// constructing real malformed YAML for every edge case.
package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/noamoss/yamly/internal/legal"
	"github.com/noamoss/yamly/internal/legalschema"
	"github.com/noamoss/yamly/internal/value"
)

// MockParser is a mock of the engine.Parser interface.
type MockParser struct {
	ctrl     *gomock.Controller
	recorder *MockParserMockRecorder
}

// MockParserMockRecorder is the mock recorder for MockParser.
type MockParserMockRecorder struct {
	mock *MockParser
}

// NewMockParser creates a new mock instance.
func NewMockParser(ctrl *gomock.Controller) *MockParser {
	m := &MockParser{ctrl: ctrl}
	m.recorder = &MockParserMockRecorder{m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockParser) EXPECT() *MockParserMockRecorder {
	return m.recorder
}

// Parse mocks base method.
func (m *MockParser) Parse(text []byte) (value.Value, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Parse", text)
	ret0, _ := ret[0].(value.Value)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Parse indicates an expected call of Parse.
func (mr *MockParserMockRecorder) Parse(text interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Parse", reflect.TypeOf((*MockParser)(nil).Parse), text)
}

// MockValidator is a mock of the engine.Validator interface.
type MockValidator struct {
	ctrl     *gomock.Controller
	recorder *MockValidatorMockRecorder
}

// MockValidatorMockRecorder is the mock recorder for MockValidator.
type MockValidatorMockRecorder struct {
	mock *MockValidator
}

// NewMockValidator creates a new mock instance.
func NewMockValidator(ctrl *gomock.Controller) *MockValidator {
	m := &MockValidator{ctrl: ctrl}
	m.recorder = &MockValidatorMockRecorder{m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockValidator) EXPECT() *MockValidatorMockRecorder {
	return m.recorder
}

// Validate mocks base method.
func (m *MockValidator) Validate(v value.Value) (*legal.Document, []legalschema.ValidationError) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", v)
	ret0, _ := ret[0].(*legal.Document)
	ret1, _ := ret[1].([]legalschema.ValidationError)
	return ret0, ret1
}

// Validate indicates an expected call of Validate.
func (mr *MockValidatorMockRecorder) Validate(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockValidator)(nil).Validate), v)
}
