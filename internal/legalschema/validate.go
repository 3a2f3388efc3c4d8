// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package legalschema turns a parsed value.Value into a legal.Document, or
// a list of field-level validation errors if the document's shape doesn't
// satisfy the schema.
package legalschema

import (
	"fmt"
	"regexp"

	"github.com/noamoss/yamly/internal/legal"
	"github.com/noamoss/yamly/internal/value"
)

// ValidationError is one field-level schema violation: a field path and a
// human-readable reason.
type ValidationError struct {
	FieldPath string
	Reason    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.FieldPath, e.Reason)
}

var sectionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var validDocTypes = map[string]legal.DocumentType{
	"law":        legal.TypeLaw,
	"regulation": legal.TypeRegulation,
	"directive":  legal.TypeDirective,
	"circular":   legal.TypeCircular,
	"policy":     legal.TypePolicy,
	"other":      legal.TypeOther,
}

// Validate converts root into a legal.Document. Any schema violation is
// collected as a ValidationError rather than stopping at the first one, so
// callers see the complete list of problems in a single pass.
func Validate(root value.Value) (*legal.Document, []ValidationError) {
	var errs []ValidationError

	docVal, ok := root.Get("document")
	if !ok || docVal.Kind() != value.KindMap {
		return nil, []ValidationError{{FieldPath: "$.document", Reason: "missing or not a mapping"}}
	}

	doc := &legal.Document{Language: "hebrew"}

	doc.ID, errs = requireStr(docVal, "id", "$.document.id", errs)
	doc.Title, errs = requireStr(docVal, "title", "$.document.title", errs)

	if tv, present := docVal.Get("type"); present {
		s, _ := tv.Str()
		t, known := validDocTypes[s]
		if !known {
			errs = append(errs, ValidationError{FieldPath: "$.document.type", Reason: "must be one of law, regulation, directive, circular, policy, other"})
		}
		doc.Type = t
	} else {
		errs = append(errs, ValidationError{FieldPath: "$.document.type", Reason: "missing"})
	}

	if lv, present := docVal.Get("language"); present {
		s, _ := lv.Str()
		if s != "hebrew" {
			errs = append(errs, ValidationError{FieldPath: "$.document.language", Reason: "must be \"hebrew\""})
		}
		doc.Language = s
	}

	doc.Version, errs = validateVersion(docVal, errs)
	doc.Source, errs = validateSource(docVal, errs)

	if av, present := docVal.Get("authors"); present {
		items, isSeq := av.Seq()
		if !isSeq {
			errs = append(errs, ValidationError{FieldPath: "$.document.authors", Reason: "must be a sequence"})
		} else {
			for _, item := range items {
				if s, isStr := item.Str(); isStr {
					doc.Authors = append(doc.Authors, s)
				}
			}
		}
	}

	if pv, present := docVal.Get("published_date"); present {
		doc.PublishedDate, _ = pv.Str()
	}
	if uv, present := docVal.Get("updated_date"); present {
		doc.UpdatedDate, _ = uv.Str()
	}

	sv, present := docVal.Get("sections")
	if !present {
		errs = append(errs, ValidationError{FieldPath: "$.document.sections", Reason: "missing"})
		return nil, errs
	}
	items, isSeq := sv.Seq()
	if !isSeq {
		errs = append(errs, ValidationError{FieldPath: "$.document.sections", Reason: "must be a sequence"})
		return nil, errs
	}

	sections, sectionErrs := validateSections(items, "$.document.sections")
	errs = append(errs, sectionErrs...)
	doc.Sections = sections

	if len(errs) > 0 {
		return nil, errs
	}
	return doc, nil
}

func requireStr(m value.Value, field, path string, errs []ValidationError) (string, []ValidationError) {
	v, present := m.Get(field)
	if !present {
		return "", append(errs, ValidationError{FieldPath: path, Reason: "missing"})
	}
	s, isStr := v.Str()
	if !isStr {
		return "", append(errs, ValidationError{FieldPath: path, Reason: "must be a string"})
	}
	return s, errs
}

func validateVersion(docVal value.Value, errs []ValidationError) (legal.VersionInfo, []ValidationError) {
	vv, present := docVal.Get("version")
	if !present || vv.Kind() != value.KindMap {
		return legal.VersionInfo{}, append(errs, ValidationError{FieldPath: "$.document.version", Reason: "missing or not a mapping"})
	}
	var info legal.VersionInfo
	info.Number, errs = requireStr(vv, "number", "$.document.version.number", errs)
	if dv, present := vv.Get("description"); present {
		info.Description, _ = dv.Str()
	}
	return info, errs
}

func validateSource(docVal value.Value, errs []ValidationError) (legal.SourceInfo, []ValidationError) {
	sv, present := docVal.Get("source")
	if !present || sv.Kind() != value.KindMap {
		return legal.SourceInfo{}, append(errs, ValidationError{FieldPath: "$.document.source", Reason: "missing or not a mapping"})
	}
	var info legal.SourceInfo
	info.URL, errs = requireStr(sv, "url", "$.document.source.url", errs)
	info.FetchedAt, errs = requireStr(sv, "fetched_at", "$.document.source.fetched_at", errs)
	return info, errs
}

func validateSections(items []value.Value, pathPrefix string) ([]legal.Section, []ValidationError) {
	var sections []legal.Section
	var errs []ValidationError
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", pathPrefix, i)
		if item.Kind() != value.KindMap {
			errs = append(errs, ValidationError{FieldPath: path, Reason: "must be a mapping"})
			continue
		}
		var s legal.Section
		s.Line = item.Line()

		idv, present := item.Get("id")
		id, _ := idv.Str()
		if !present || id == "" || !sectionIDPattern.MatchString(id) {
			errs = append(errs, ValidationError{FieldPath: path + ".id", Reason: "must match [A-Za-z0-9_-]+"})
		}
		s.ID = id

		mv, present := item.Get("marker")
		marker, _ := mv.Str()
		if !present || marker == "" {
			errs = append(errs, ValidationError{FieldPath: path + ".marker", Reason: "must be a non-empty string"})
		}
		s.Marker = marker

		if tv, present := item.Get("title"); present {
			s.Title, _ = tv.Str()
		}
		if cv, present := item.Get("content"); present {
			s.Content, _ = cv.Str()
		}

		if cv, present := item.Get("children"); present {
			childItems, isSeq := cv.Seq()
			if !isSeq {
				errs = append(errs, ValidationError{FieldPath: path + ".children", Reason: "must be a sequence"})
			} else {
				children, childErrs := validateSections(childItems, path+".children")
				s.Children = children
				errs = append(errs, childErrs...)
			}
		}

		sections = append(sections, s)
	}
	return sections, errs
}
