// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"fmt"
	"reflect"

	"github.com/fatih/structs"
)

// metadataFields is the whitelist of top-level Document fields the metadata
// diff walks: version.*, source.*, authors, published_date, updated_date.
// Id/Title/Type/Language/Sections are deliberately excluded.
var metadataFields = map[string]bool{
	"version":        true,
	"source":         true,
	"authors":        true,
	"published_date": true,
	"updated_date":   true,
}

// diffMetadata walks the document's fields via reflection
// (github.com/fatih/structs), keeping those named in metadataFields, so a new
// metadata field needs a `structs` tag and a metadataFields entry to be
// picked up here.
func diffMetadata(old, new *Document) []SectionChange {
	var out []SectionChange
	oldFields := structs.New(old).Fields()
	newByName := fieldsByTag(structs.New(new).Fields())

	for _, of := range oldFields {
		name := of.Tag("structs")
		if !metadataFields[name] {
			continue
		}
		nf, ok := newByName[name]
		if !ok {
			continue
		}
		out = append(out, diffMetadataField(name, of, nf)...)
	}
	return out
}

func fieldsByTag(fields []*structs.Field) map[string]*structs.Field {
	idx := make(map[string]*structs.Field, len(fields))
	for _, f := range fields {
		idx[f.Tag("structs")] = f
	}
	return idx
}

func diffMetadataField(name string, of, nf *structs.Field) []SectionChange {
	if of.Kind() == reflect.Struct {
		var out []SectionChange
		oldSub := fieldsByTag(of.Fields())
		newSub := fieldsByTag(nf.Fields())
		for subName, osf := range oldSub {
			nsf, ok := newSub[subName]
			if !ok {
				continue
			}
			if !reflect.DeepEqual(osf.Value(), nsf.Value()) {
				out = append(out, metadataChange(fmt.Sprintf("%s.%s", name, subName), osf.Value(), nsf.Value()))
			}
		}
		return out
	}

	if reflect.DeepEqual(of.Value(), nf.Value()) {
		return nil
	}
	return []SectionChange{metadataChange(name, of.Value(), nf.Value())}
}

func metadataChange(fieldPath string, oldVal, newVal interface{}) SectionChange {
	oldStr := fmt.Sprintf("%v", oldVal)
	newStr := fmt.Sprintf("%v", newVal)
	return SectionChange{
		ID:            newChangeID(),
		Kind:          ContentChanged,
		Marker:        MetadataMarker,
		OldMarkerPath: []string{MetadataMarker, fieldPath},
		NewMarkerPath: []string{MetadataMarker, fieldPath},
		OldContent:    &oldStr,
		NewContent:    &newStr,
	}
}
