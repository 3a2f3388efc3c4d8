// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"encoding/json"

	"github.com/noamoss/yamly/internal/generic"
	"github.com/noamoss/yamly/internal/legal"
)

type resultDocument struct {
	Generic []genericDTO `json:"generic,omitempty" yaml:"generic,omitempty"`
	Legal   []sectionDTO `json:"legal,omitempty" yaml:"legal,omitempty"`
}

func toResultDocument(genChanges []generic.Change, legalChanges []legal.SectionChange) resultDocument {
	doc := resultDocument{}
	for _, c := range genChanges {
		doc.Generic = append(doc.Generic, toGenericDTO(c))
	}
	for _, c := range legalChanges {
		doc.Legal = append(doc.Legal, toSectionDTO(c))
	}
	return doc
}

func formatJSON(genChanges []generic.Change, legalChanges []legal.SectionChange) (string, error) {
	doc := toResultDocument(genChanges, legalChanges)
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
