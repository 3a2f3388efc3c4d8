// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package yamlsrc decodes YAML text into a value.Value tree carrying
// per-node source lines, by decoding into yaml.Node trees and walking their
// .Kind/.Tag/.Content.
package yamlsrc

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/noamoss/yamly/internal/value"
)

// ParseError reports malformed YAML input, carrying the offending line and
// column when yaml.v3 provides one.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("yaml parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("yaml parse error: %s", e.Message)
}

// Parse decodes text into a value.Value tree. Input must be valid UTF-8;
// yaml.v3's safe decoder never executes tags that construct arbitrary Go
// types, so no untrusted-input code execution is possible.
func Parse(text []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(text, &doc); err != nil {
		if te, ok := err.(*yaml.TypeError); ok {
			return value.Value{}, &ParseError{Message: te.Error()}
		}
		return value.Value{}, &ParseError{Message: err.Error()}
	}
	if len(doc.Content) == 0 {
		return value.Null(0), nil
	}
	root := doc.Content[0]
	return convert(root)
}

func convert(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(n.Line), nil
		}
		return convert(n.Content[0])
	case yaml.AliasNode:
		return convert(n.Alias)
	case yaml.ScalarNode:
		return convertScalar(n)
	case yaml.SequenceNode:
		items := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := convert(c)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, v)
		}
		return value.Seq(items, n.Line), nil
	case yaml.MappingNode:
		entries := make([]value.Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			valNode := n.Content[i+1]
			v, err := convert(valNode)
			if err != nil {
				return value.Value{}, err
			}
			entries = append(entries, value.Entry{Key: keyNode.Value, Value: v})
		}
		return value.Map(entries, n.Line), nil
	default:
		return value.Value{}, &ParseError{Line: n.Line, Column: n.Column, Message: "unsupported node kind"}
	}
}

func convertScalar(n *yaml.Node) (value.Value, error) {
	switch n.Tag {
	case "!!null":
		return value.Null(n.Line), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return value.Value{}, &ParseError{Line: n.Line, Column: n.Column, Message: "invalid boolean: " + n.Value}
		}
		return value.Bool(b, n.Line), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return value.Value{}, &ParseError{Line: n.Line, Column: n.Column, Message: "invalid integer: " + n.Value}
		}
		return value.Int(i, n.Line), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return value.Value{}, &ParseError{Line: n.Line, Column: n.Column, Message: "invalid float: " + n.Value}
		}
		return value.Float(f, n.Line), nil
	default:
		return value.Str(n.Value, n.Line), nil
	}
}
