// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"

	"github.com/noamoss/yamly/internal/engine"
)

// Style is one of the three supported output styles.
type Style string

// The three supported output styles.
const (
	StyleJSON Style = "json"
	StyleYAML Style = "yaml"
	StyleText Style = "text"
)

// UnsupportedStyleError reports a style outside {json, text, yaml}.
type UnsupportedStyleError struct {
	Style string
}

func (e *UnsupportedStyleError) Error() string {
	return fmt.Sprintf("unsupported format style %q", e.Style)
}

// Formatter implements engine.Formatter for the three built-in styles.
type Formatter struct{}

// Format renders result in style, after applying filters. Filtering never
// alters what the engine computed: it only narrows the formatter's view of
// it.
func (Formatter) Format(result engine.Result, style string, filters engine.Filters) (string, error) {
	return Format(result, style, filters)
}

// Format is the package-level entry point so callers that don't need the
// Formatter value (e.g. the CLI) can call it directly.
func Format(result engine.Result, style string, filters engine.Filters) (string, error) {
	genChanges := filterGeneric(result.Generic, filters)
	legalChanges := filterLegal(result.Legal, filters)

	switch Style(style) {
	case StyleJSON:
		return formatJSON(genChanges, legalChanges)
	case StyleYAML:
		return formatYAML(genChanges, legalChanges)
	case StyleText:
		return formatText(result.Mode, genChanges, legalChanges)
	default:
		return "", &UnsupportedStyleError{Style: style}
	}
}
