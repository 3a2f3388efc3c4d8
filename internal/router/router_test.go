// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly/internal/value"
)

func legalEnvelope() value.Value {
	section := value.Map([]value.Entry{
		{Key: "marker", Value: value.Str("1", 1)},
		{Key: "title", Value: value.Str("Definitions", 1)},
	}, 1)
	document := value.Map([]value.Entry{
		{Key: "sections", Value: value.Seq([]value.Value{section}, 1)},
	}, 0)
	return value.Map([]value.Entry{{Key: "document", Value: document}}, 0)
}

func genericDoc() value.Value {
	return value.Map([]value.Entry{{Key: "port", Value: value.Int(80, 1)}}, 0)
}

func TestRoute(t *testing.T) {
	testCases := map[string]struct {
		old, new value.Value
		hint     Hint
		want     Mode
	}{
		"auto classifies a legal envelope on both sides": {
			old: legalEnvelope(), new: legalEnvelope(), hint: HintAuto, want: LegalDocument,
		},
		"auto classifies a generic document as generic": {
			old: genericDoc(), new: genericDoc(), hint: HintAuto, want: Generic,
		},
		"auto falls back to generic when only one side looks legal": {
			old: legalEnvelope(), new: genericDoc(), hint: HintAuto, want: Generic,
		},
		"explicit general hint overrides a legal-looking envelope": {
			old: legalEnvelope(), new: legalEnvelope(), hint: HintGeneral, want: Generic,
		},
		"explicit legal-document hint overrides a generic document": {
			old: genericDoc(), new: genericDoc(), hint: HintLegalDocument, want: LegalDocument,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, Route(tc.old, tc.new, tc.hint))
		})
	}
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "legal_document", LegalDocument.String())
	require.Equal(t, "general", Generic.String())
}

func TestLooksLikeLegalDocument_MissingMarkerRejects(t *testing.T) {
	section := value.Map([]value.Entry{{Key: "title", Value: value.Str("No marker", 1)}}, 1)
	document := value.Map([]value.Entry{
		{Key: "sections", Value: value.Seq([]value.Value{section}, 1)},
	}, 0)
	doc := value.Map([]value.Entry{{Key: "document", Value: document}}, 0)

	require.Equal(t, Generic, Route(doc, doc, HintAuto))
}
