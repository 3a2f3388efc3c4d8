// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly/internal/identity"
	"github.com/noamoss/yamly/internal/legalschema"
	"github.com/noamoss/yamly/internal/mocks"
	"github.com/noamoss/yamly/internal/router"
	"github.com/noamoss/yamly/internal/value"
	"github.com/noamoss/yamly/internal/yamlsrc"
)

func newRealEngine() *Engine {
	return &Engine{Parser: realParser{}, Validator: realValidator{}}
}

func TestDiff_GenericMode(t *testing.T) {
	e := newRealEngine()

	result, err := e.Diff([]byte("port: 80\n"), []byte("port: 8080\n"), router.HintAuto, nil)
	require.NoError(t, err)
	require.Equal(t, router.Generic, result.Mode)
	require.Len(t, result.Generic, 1)
}

func TestDiff_LegalDocumentMode(t *testing.T) {
	e := newRealEngine()

	oldText := []byte(`document:
  id: doc-1
  title: Employment Ordinance
  type: law
  language: hebrew
  version:
    number: "1.0"
  source:
    url: https://example.gov/law
    fetched_at: "2026-01-01"
  sections:
    - id: s1
      marker: "1"
      title: Definitions
      content: old content
`)
	newText := []byte(`document:
  id: doc-1
  title: Employment Ordinance
  type: law
  language: hebrew
  version:
    number: "1.0"
  source:
    url: https://example.gov/law
    fetched_at: "2026-01-01"
  sections:
    - id: s1
      marker: "1"
      title: Definitions
      content: new content
`)

	result, err := e.Diff(oldText, newText, router.HintAuto, nil)
	require.NoError(t, err)
	require.Equal(t, router.LegalDocument, result.Mode)
	require.Len(t, result.Legal, 1)
	require.NotNil(t, result.Legal[0].NewSectionYAML, "marker mode populates section YAML text")
}

func TestDiff_ParseErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parseErr := &yamlsrc.ParseError{Message: "boom"}
	parser := mocks.NewMockParser(ctrl)
	parser.EXPECT().Parse([]byte("bad")).Return(value.Value{}, parseErr)

	e := &Engine{Parser: parser, Validator: realValidator{}}
	_, err := e.Diff([]byte("bad"), []byte("bad"), router.HintAuto, nil)

	require.ErrorIs(t, err, error(parseErr))
}

func TestDiff_BadIdentityRuleRejected(t *testing.T) {
	e := newRealEngine()

	rules := []identity.Rule{{ArrayName: "items", IdentityField: ""}}
	_, err := e.Diff([]byte("items: []\n"), []byte("items: []\n"), router.HintAuto, rules)

	require.Error(t, err)
	var badRule *BadIdentityRuleError
	require.ErrorAs(t, err, &badRule)
	require.Equal(t, "items", badRule.ArrayName)
}

func TestDiff_ValidationFailurePropagatesAsSingleError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := mocks.NewMockValidator(ctrl)
	validator.EXPECT().Validate(gomock.Any()).Return(nil, []legalschema.ValidationError{
		{FieldPath: "$.document.id", Reason: "missing"},
	})

	e := &Engine{Parser: realParser{}, Validator: validator}

	legalText := []byte(`document:
  sections:
    - id: s1
      marker: "1"
`)
	_, err := e.Diff(legalText, legalText, router.HintLegalDocument, nil)

	require.Error(t, err)
	var valErr *ValidationFailedError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Errors, 1)
}

func TestValidate_Success(t *testing.T) {
	e := newRealEngine()

	text := []byte(`document:
  id: doc-1
  title: Employment Ordinance
  type: law
  language: hebrew
  version:
    number: "1.0"
  source:
    url: https://example.gov/law
    fetched_at: "2026-01-01"
  sections:
    - id: s1
      marker: "1"
`)

	doc, err := e.Validate(text)
	require.NoError(t, err)
	require.Equal(t, "doc-1", doc.ID)
}

func TestValidate_Failure(t *testing.T) {
	e := newRealEngine()

	_, err := e.Validate([]byte("document: {}\n"))
	require.Error(t, err)
	var valErr *ValidationFailedError
	require.True(t, errors.As(err, &valErr))
}
