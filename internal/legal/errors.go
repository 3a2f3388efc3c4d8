// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"fmt"
	"strings"
)

// DuplicateMarkerError reports two sibling sections sharing a marker: a
// typed error carrying enough context to pinpoint the offending location
// rather than a bare string.
type DuplicateMarkerError struct {
	ParentPath []string
	Marker     string
}

func (e *DuplicateMarkerError) Error() string {
	parent := "$"
	if len(e.ParentPath) > 0 {
		parent = "$." + strings.Join(e.ParentPath, ".")
	}
	return fmt.Sprintf("duplicate marker %q among siblings at %s", e.Marker, parent)
}
