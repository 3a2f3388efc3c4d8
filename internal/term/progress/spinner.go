// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress renders a terminal spinner while a diff or validate run
// is in flight, so long-running loads over many files don't look hung.
package progress

import (
	"fmt"
	"os"
	"time"

	spin "github.com/briandowns/spinner"
)

// spinner is the subset of *spin.Spinner that Spinner drives, narrowed so
// tests can substitute a mock.
type spinner interface {
	Start()
	Stop()
}

// Spinner prints a label alongside an animated cursor, then replaces it
// with a final message once the work is done.
type Spinner struct {
	internal spinner
	label    string
}

// New returns a Spinner writing to stderr with a 125ms animation cadence.
func New() *Spinner {
	s := spin.New(spin.CharSets[14], 125*time.Millisecond, spin.WithWriter(os.Stderr))
	return &Spinner{internal: s}
}

// Start begins the animation with the given label.
func (s *Spinner) Start(label string) {
	s.label = label
	if sp, ok := s.internal.(*spin.Spinner); ok {
		sp.Suffix = " " + label
	}
	s.internal.Start()
}

// Stop halts the animation and prints label as the final status line.
func (s *Spinner) Stop(label string) {
	s.internal.Stop()
	if label != "" {
		fmt.Fprintln(os.Stderr, label)
	}
}
