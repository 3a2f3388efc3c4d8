// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/noamoss/yamly/internal/legal"
)

func withSections(sections ...legal.Section) *legal.Document {
	return &legal.Document{
		ID:       "doc-1",
		Title:    "Employment Ordinance",
		Type:     legal.TypeLaw,
		Language: "hebrew",
		Sections: sections,
	}
}

var _ = Describe("Diff", func() {
	var oldDoc, newDoc *legal.Document

	BeforeEach(func() {
		oldDoc = withSections(legal.Section{ID: "s1", Marker: "1", Title: "Definitions", Content: "some content here", Line: 1})
		newDoc = withSections(legal.Section{ID: "s1", Marker: "1", Title: "Definitions", Content: "some content here", Line: 1})
	})

	When("a section is identical on both sides", func() {
		It("emits a single UNCHANGED record and nothing else", func() {
			changes, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(HaveLen(1))
			Expect(changes[0].Kind).To(Equal(legal.SectionUnchanged))
		})
	})

	When("a section's content changes but its title doesn't", func() {
		It("emits only CONTENT_CHANGED", func() {
			newDoc.Sections[0].Content = "some content here, amended"

			changes, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(HaveLen(1))
			Expect(changes[0].Kind).To(Equal(legal.ContentChanged))
			Expect(*changes[0].NewContent).To(Equal("some content here, amended"))
		})
	})

	When("a section's title and content both change", func() {
		It("emits both CONTENT_CHANGED and TITLE_CHANGED", func() {
			newDoc.Sections[0].Title = "Definitions and Scope"
			newDoc.Sections[0].Content = "some content here, amended"

			changes, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())

			var kinds []legal.SectionChangeKind
			for _, c := range changes {
				kinds = append(kinds, c.Kind)
			}
			Expect(kinds).To(ConsistOf(legal.ContentChanged, legal.TitleChanged))
		})
	})

	When("a section's marker path changes but its content stays above the move threshold", func() {
		It("emits SECTION_MOVED keyed by content similarity, not marker path", func() {
			longContent := "the employer shall provide written notice of termination no later than thirty days in advance"
			oldDoc = withSections(
				legal.Section{ID: "s1", Marker: "5", Title: "Notice", Content: longContent, Line: 1},
				legal.Section{ID: "s2", Marker: "6", Title: "Other", Content: "unrelated filler text entirely", Line: 2},
			)
			newDoc = withSections(
				legal.Section{ID: "s1", Marker: "9", Title: "Notice", Content: longContent, Line: 1},
				legal.Section{ID: "s2", Marker: "6", Title: "Other", Content: "unrelated filler text entirely", Line: 2},
			)

			changes, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())

			moved := filterKind(changes, legal.SectionMoved)
			Expect(moved).To(HaveLen(1))
			Expect(moved[0].SectionID).To(Equal("s1"))
			Expect(moved[0].OldMarkerPath).To(Equal([]string{"5"}))
			Expect(moved[0].NewMarkerPath).To(Equal([]string{"9"}))

			unchanged := filterKind(changes, legal.SectionUnchanged)
			Expect(unchanged).To(HaveLen(1), "the other section matched exactly by marker path")
		})
	})

	When("a section exists only in the old document", func() {
		It("emits SECTION_REMOVED", func() {
			oldDoc = withSections(
				legal.Section{ID: "s1", Marker: "1", Title: "Definitions", Content: "kept", Line: 1},
				legal.Section{ID: "s2", Marker: "2", Title: "Repealed", Content: "gone now, no match anywhere", Line: 2},
			)
			newDoc = withSections(
				legal.Section{ID: "s1", Marker: "1", Title: "Definitions", Content: "kept", Line: 1},
			)

			changes, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())

			removed := filterKind(changes, legal.SectionRemoved)
			Expect(removed).To(HaveLen(1))
			Expect(removed[0].SectionID).To(Equal("s2"))
		})
	})

	When("a section exists only in the new document", func() {
		It("emits SECTION_ADDED", func() {
			newDoc = withSections(
				legal.Section{ID: "s1", Marker: "1", Title: "Definitions", Content: "some content here", Line: 1},
				legal.Section{ID: "s2", Marker: "2", Title: "New Section", Content: "brand new material entirely", Line: 2},
			)

			changes, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())

			added := filterKind(changes, legal.SectionAdded)
			Expect(added).To(HaveLen(1))
			Expect(added[0].SectionID).To(Equal("s2"))
		})
	})

	When("two sibling sections share a marker", func() {
		It("fails with DuplicateMarkerError rather than diffing silently", func() {
			oldDoc = withSections(
				legal.Section{ID: "s1", Marker: "1", Title: "A", Content: "a"},
				legal.Section{ID: "s2", Marker: "1", Title: "B", Content: "b"},
			)

			_, err := legal.Diff(oldDoc, newDoc)
			Expect(err).To(HaveOccurred())

			var dupErr *legal.DuplicateMarkerError
			Expect(err).To(BeAssignableToTypeOf(dupErr))
		})
	})

	When("the same two documents are diffed in reverse", func() {
		It("reports the mirror-image set of changes", func() {
			newDoc.Sections[0].Content = "some content here, amended"

			forward, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())
			backward, err := legal.Diff(newDoc, oldDoc)
			Expect(err).NotTo(HaveOccurred())

			Expect(forward).To(HaveLen(1))
			Expect(backward).To(HaveLen(1))
			Expect(forward[0].Kind).To(Equal(legal.ContentChanged))
			Expect(backward[0].Kind).To(Equal(legal.ContentChanged))
			Expect(forward[0].OldContent).To(Equal(backward[0].NewContent))
			Expect(forward[0].NewContent).To(Equal(backward[0].OldContent))
		})
	})

	When("document metadata changes but sections don't", func() {
		It("emits a metadata CONTENT_CHANGED record keyed under the metadata marker", func() {
			oldDoc.Version = legal.VersionInfo{Number: "1.0", Description: "initial"}
			newDoc.Version = legal.VersionInfo{Number: "1.1", Description: "initial"}

			changes, err := legal.Diff(oldDoc, newDoc)
			Expect(err).NotTo(HaveOccurred())

			meta := filterKind(changes, legal.ContentChanged)
			var found bool
			for _, c := range meta {
				if c.Marker == legal.MetadataMarker {
					found = true
					Expect(c.NewMarkerPath).To(Equal([]string{legal.MetadataMarker, "version.number"}))
				}
			}
			Expect(found).To(BeTrue())
		})
	})
})

func filterKind(changes []legal.SectionChange, kind legal.SectionChangeKind) []legal.SectionChange {
	var out []legal.SectionChange
	for _, c := range changes {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
