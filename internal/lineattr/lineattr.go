// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lineattr attaches source line numbers to change records and, in
// marker mode, extracts the literal YAML text of changed sections.
package lineattr

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/noamoss/yamly/internal/legal"
)

// GenericLine resolves the line to attribute to a generic-mode change.
// Every parsed Value already carries its own accurate source line, including
// flow-style array items, but a node that never received a line from the
// parser (nodeLine == 0) falls back to its nearest ancestor mapping key's
// line.
func GenericLine(nodeLine, ancestorKeyLine int) int {
	if nodeLine > 0 {
		return nodeLine
	}
	return ancestorKeyLine
}

// sectionYAML mirrors legal.Section for canonical re-encoding; it excludes
// Id and Line, which are not part of a section's YAML body.
type sectionYAML struct {
	Marker   string        `yaml:"marker"`
	Title    string        `yaml:"title,omitempty"`
	Content  string        `yaml:"content,omitempty"`
	Children []sectionYAML `yaml:"children,omitempty"`
}

func toYAML(s legal.Section) sectionYAML {
	out := sectionYAML{Marker: s.Marker, Title: s.Title, Content: s.Content}
	for _, c := range s.Children {
		out.Children = append(out.Children, toYAML(c))
	}
	return out
}

// ExtractSectionYAML reproduces s's subtree as YAML text with two-space
// indentation, in insertion order. It is not required to be byte-identical
// to the original source, only structurally faithful.
func ExtractSectionYAML(s legal.Section) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(s)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// findSection locates the section at idPath (a sequence of Section.ID
// values from the document root) within sections.
func findSection(sections []legal.Section, idPath []string) (legal.Section, bool) {
	if len(idPath) == 0 {
		return legal.Section{}, false
	}
	for _, s := range sections {
		if s.ID != idPath[0] {
			continue
		}
		if len(idPath) == 1 {
			return s, true
		}
		return findSection(s.Children, idPath[1:])
	}
	return legal.Section{}, false
}

// PopulateSectionYAML fills OldSectionYAML/NewSectionYAML on each change
// whose OldIDPath/NewIDPath resolves to a section in oldDoc/newDoc. Changes
// for which extraction fails (path doesn't resolve, e.g. a metadata record)
// are left untouched.
func PopulateSectionYAML(changes []legal.SectionChange, oldDoc, newDoc *legal.Document) {
	for i := range changes {
		c := &changes[i]
		if len(c.OldIDPath) > 0 {
			if s, ok := findSection(oldDoc.Sections, c.OldIDPath); ok {
				if text, err := ExtractSectionYAML(s); err == nil {
					c.OldSectionYAML = &text
				}
			}
		}
		if len(c.NewIDPath) > 0 {
			if s, ok := findSection(newDoc.Sections, c.NewIDPath); ok {
				if text, err := ExtractSectionYAML(s); err == nil {
					c.NewSectionYAML = &text
				}
			}
		}
	}
}
