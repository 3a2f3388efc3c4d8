// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package legal implements the marker-based diff engine for hierarchical
// legal documents: Section/Document types, marker-path indexing, exact/move/
// residual classification of sections, and document metadata diffing.
package legal

// Section is one node of a legal document's hierarchy. Id must match
// [A-Za-z0-9_-]+; Marker must be unique among siblings.
type Section struct {
	ID       string
	Marker   string
	Title    string
	Content  string
	Children []Section
	Line     int
}

// VersionInfo is a document's version stamp.
type VersionInfo struct {
	Number      string `structs:"number"`
	Description string `structs:"description"`
}

// SourceInfo records where a document was retrieved from.
type SourceInfo struct {
	URL       string `structs:"url"`
	FetchedAt string `structs:"fetched_at"`
}

// DocumentType enumerates the closed set of legal document types.
type DocumentType int

// The full set of document types.
const (
	TypeLaw DocumentType = iota
	TypeRegulation
	TypeDirective
	TypeCircular
	TypePolicy
	TypeOther
)

func (t DocumentType) String() string {
	switch t {
	case TypeLaw:
		return "law"
	case TypeRegulation:
		return "regulation"
	case TypeDirective:
		return "directive"
	case TypeCircular:
		return "circular"
	case TypePolicy:
		return "policy"
	default:
		return "other"
	}
}

// Document is a validated legal document: the output of the validator
// collaborator (§6) and the input to the marker diff engine.
type Document struct {
	ID            string
	Title         string
	Type          DocumentType
	Language      string // always "hebrew"
	Version       VersionInfo `structs:"version"`
	Source        SourceInfo  `structs:"source"`
	Authors       []string    `structs:"authors"`
	PublishedDate string      `structs:"published_date"`
	UpdatedDate   string      `structs:"updated_date"`
	Sections      []Section   `structs:"-"`
}
