// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"gopkg.in/yaml.v3"

	"github.com/noamoss/yamly/internal/generic"
	"github.com/noamoss/yamly/internal/legal"
)

func formatYAML(genChanges []generic.Change, legalChanges []legal.SectionChange) (string, error) {
	doc := toResultDocument(genChanges, legalChanges)
	b, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
