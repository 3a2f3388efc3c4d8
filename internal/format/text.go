// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/xlab/treeprint"
	"golang.org/x/mod/semver"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/noamoss/yamly/internal/generic"
	"github.com/noamoss/yamly/internal/legal"
	"github.com/noamoss/yamly/internal/router"
)

var titleCaser = cases.Title(language.Und)

func formatText(mode router.Mode, genChanges []generic.Change, legalChanges []legal.SectionChange) (string, error) {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("yamly diff (%s)", mode))

	for _, c := range genChanges {
		addGenericBranch(tree, c)
	}
	for _, c := range legalChanges {
		addSectionBranch(tree, c)
	}

	var sb strings.Builder
	sb.WriteString(tree.String())
	sb.WriteString(summaryLine(len(genChanges), len(legalChanges)))
	if note := versionBumpNote(legalChanges); note != "" {
		sb.WriteString(note)
	}
	return sb.String(), nil
}

func summaryLine(genCount, legalCount int) string {
	total := genCount + legalCount
	noun := "change"
	if total != 1 {
		noun = "changes"
	}
	return fmt.Sprintf("%s %s\n", humanize.Comma(int64(total)), noun)
}

func addGenericBranch(tree treeprint.Tree, c generic.Change) {
	branch := tree.AddBranch(c.Path.String())
	label := colorize(titleCaseKind(c.Kind.String()), genericColor(c.Kind))
	branch.AddNode(fmt.Sprintf("%s: %s -> %s", label, renderGenericOld(c), renderGenericNew(c)))
}

func addSectionBranch(tree treeprint.Tree, c legal.SectionChange) {
	label := colorize(titleCaseKind(c.Kind.String()), sectionColor(c.Kind))
	branch := tree.AddBranch(c.Marker)
	branch.AddNode(fmt.Sprintf("%s: %s -> %s", label, derefStr(c.OldContent), derefStr(c.NewContent)))
}

// titleCaseKind turns a SCREAMING_SNAKE kind constant into a title-cased
// phrase, e.g. "VALUE_CHANGED" -> "Value Changed".
func titleCaseKind(kind string) string {
	lower := strings.ToLower(strings.ReplaceAll(kind, "_", " "))
	return titleCaser.String(lower)
}

func genericColor(k generic.ChangeKind) *color.Color {
	switch k {
	case generic.KeyRemoved, generic.ItemRemoved:
		return color.New(color.FgRed)
	case generic.KeyAdded, generic.ItemAdded:
		return color.New(color.FgGreen)
	case generic.KeyRenamed, generic.KeyMoved, generic.ItemMoved, generic.ItemChanged, generic.ValueChanged, generic.TypeChanged:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgWhite)
	}
}

func sectionColor(k legal.SectionChangeKind) *color.Color {
	switch k {
	case legal.SectionRemoved:
		return color.New(color.FgRed)
	case legal.SectionAdded:
		return color.New(color.FgGreen)
	case legal.SectionMoved, legal.ContentChanged, legal.TitleChanged:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgWhite)
	}
}

func colorize(label string, c *color.Color) string { return c.Sprint(label) }

func renderGenericOld(c generic.Change) string {
	if c.OldValue == nil {
		return "∅"
	}
	return fmt.Sprint(toNative(*c.OldValue))
}

func renderGenericNew(c generic.Change) string {
	if c.NewValue == nil {
		return "∅"
	}
	return fmt.Sprint(toNative(*c.NewValue))
}

func derefStr(s *string) string {
	if s == nil {
		return "∅"
	}
	return *s
}

// versionBumpNote checks the metadata diff for a version.number change and,
// when both sides look semver-shaped, appends a one-line annotation. This
// never becomes part of a SectionChange: it's a formatting-only note.
func versionBumpNote(changes []legal.SectionChange) string {
	for _, c := range changes {
		if len(c.NewMarkerPath) != 2 || c.NewMarkerPath[0] != legal.MetadataMarker || c.NewMarkerPath[1] != "version.number" {
			continue
		}
		if c.OldContent == nil || c.NewContent == nil {
			continue
		}
		oldV, newV := "v"+*c.OldContent, "v"+*c.NewContent
		if !semver.IsValid(oldV) || !semver.IsValid(newV) {
			continue
		}
		switch semver.Compare(oldV, newV) {
		case -1:
			return "version bumped\n"
		case 1:
			return "version dropped\n"
		}
	}
	return ""
}
