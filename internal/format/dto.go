// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package format implements the json/text/yaml result formatters:
// serialising a diff Result to a string, optionally filtered.
package format

import (
	"github.com/noamoss/yamly/internal/generic"
	"github.com/noamoss/yamly/internal/legal"
	"github.com/noamoss/yamly/internal/value"
)

// genericDTO is the serializable projection of a generic.Change.
type genericDTO struct {
	ID       string      `json:"id" yaml:"id"`
	Kind     string      `json:"kind" yaml:"kind"`
	Path     string      `json:"path" yaml:"path"`
	OldPath  *string     `json:"old_path,omitempty" yaml:"old_path,omitempty"`
	NewPath  *string     `json:"new_path,omitempty" yaml:"new_path,omitempty"`
	OldKey   *string     `json:"old_key,omitempty" yaml:"old_key,omitempty"`
	NewKey   *string     `json:"new_key,omitempty" yaml:"new_key,omitempty"`
	OldValue interface{} `json:"old_value,omitempty" yaml:"old_value,omitempty"`
	NewValue interface{} `json:"new_value,omitempty" yaml:"new_value,omitempty"`
	OldLine  *int        `json:"old_line,omitempty" yaml:"old_line,omitempty"`
	NewLine  *int        `json:"new_line,omitempty" yaml:"new_line,omitempty"`
}

func toGenericDTO(c generic.Change) genericDTO {
	d := genericDTO{
		ID:      c.ID,
		Kind:    c.Kind.String(),
		Path:    c.Path.String(),
		OldKey:  c.OldKey,
		NewKey:  c.NewKey,
		OldLine: c.OldLine,
		NewLine: c.NewLine,
	}
	if c.OldPath != nil {
		s := c.OldPath.String()
		d.OldPath = &s
	}
	if c.NewPath != nil {
		s := c.NewPath.String()
		d.NewPath = &s
	}
	if c.OldValue != nil {
		d.OldValue = toNative(*c.OldValue)
	}
	if c.NewValue != nil {
		d.NewValue = toNative(*c.NewValue)
	}
	return d
}

// sectionDTO is the serializable projection of a legal.SectionChange.
type sectionDTO struct {
	ID             string   `json:"id" yaml:"id"`
	SectionID      string   `json:"section_id" yaml:"section_id"`
	Kind           string   `json:"kind" yaml:"kind"`
	Marker         string   `json:"marker" yaml:"marker"`
	OldMarkerPath  []string `json:"old_marker_path,omitempty" yaml:"old_marker_path,omitempty"`
	NewMarkerPath  []string `json:"new_marker_path,omitempty" yaml:"new_marker_path,omitempty"`
	OldIDPath      []string `json:"old_id_path,omitempty" yaml:"old_id_path,omitempty"`
	NewIDPath      []string `json:"new_id_path,omitempty" yaml:"new_id_path,omitempty"`
	OldContent     *string  `json:"old_content,omitempty" yaml:"old_content,omitempty"`
	NewContent     *string  `json:"new_content,omitempty" yaml:"new_content,omitempty"`
	OldTitle       *string  `json:"old_title,omitempty" yaml:"old_title,omitempty"`
	NewTitle       *string  `json:"new_title,omitempty" yaml:"new_title,omitempty"`
	OldSectionYAML *string  `json:"old_section_yaml,omitempty" yaml:"old_section_yaml,omitempty"`
	NewSectionYAML *string  `json:"new_section_yaml,omitempty" yaml:"new_section_yaml,omitempty"`
	OldLine        *int     `json:"old_line,omitempty" yaml:"old_line,omitempty"`
	NewLine        *int     `json:"new_line,omitempty" yaml:"new_line,omitempty"`
}

func toSectionDTO(c legal.SectionChange) sectionDTO {
	return sectionDTO{
		ID:             c.ID,
		SectionID:      c.SectionID,
		Kind:           c.Kind.String(),
		Marker:         c.Marker,
		OldMarkerPath:  c.OldMarkerPath,
		NewMarkerPath:  c.NewMarkerPath,
		OldIDPath:      c.OldIDPath,
		NewIDPath:      c.NewIDPath,
		OldContent:     c.OldContent,
		NewContent:     c.NewContent,
		OldTitle:       c.OldTitle,
		NewTitle:       c.NewTitle,
		OldSectionYAML: c.OldSectionYAML,
		NewSectionYAML: c.NewSectionYAML,
		OldLine:        c.OldLine,
		NewLine:        c.NewLine,
	}
}

// toNative converts a value.Value into plain Go data (map/slice/scalar) for
// JSON/YAML serialisation. Mapping key order is not preserved in the native
// map form; order is a core-engine guarantee (value.Value/value.Entry), not
// a formatter one, so this loss is confined to the presentation layer.
func toNative(v value.Value) interface{} {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.Bool()
		return b
	case value.KindInt:
		i, _ := v.Int()
		return i
	case value.KindFloat:
		f, _ := v.Float()
		return f
	case value.KindStr:
		s, _ := v.Str()
		return s
	case value.KindSeq:
		items, _ := v.Seq()
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = toNative(item)
		}
		return out
	case value.KindMap:
		entries, _ := v.Map()
		out := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			out[e.Key] = toNative(e.Value)
		}
		return out
	default:
		return nil
	}
}
