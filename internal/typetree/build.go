// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package typetree

import (
	"fmt"
	"strings"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
)

// FieldListKind says which entity a field list belongs to. Optionality,
// restriction, and default-behavior annotations are only meaningful on
// request parameters; the other kinds ignore them even when present in the
// raw document.
type FieldListKind int

const (
	// RequestParams is a request's parameter field list.
	RequestParams FieldListKind = iota
	// ResponseData is a request's response field list.
	ResponseData
	// EventData is an event's payload field list.
	EventData
)

// Build unflattens a field list into one type tree rooted at an object node.
//
// Fields are inserted in input order into a trie keyed by the split path
// segments, so intermediate containers exist before they are descended into
// regardless of how the document orders its fields, and sibling order in the
// result follows first appearance in the input. Any structural conflict
// aborts the whole build; no partial tree is returned.
func Build(fields []protocol.Field, kind FieldListKind) (*Node, error) {
	root := newObject()
	for _, f := range fields {
		if err := insert(root, f, kind); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func insert(root *Node, f protocol.Field, kind FieldListKind) error {
	segments := strings.Split(f.ValueName, ".")
	leaf := segments[len(segments)-1]
	if leaf == "*" {
		return fmt.Errorf("field %q: trailing wildcard segment: %w", f.ValueName, ErrWildcardPlacement)
	}

	cur := root
	for i, segment := range segments[:len(segments)-1] {
		if segment == "*" {
			if cur.Kind != KindArray || cur.Elem == nil || cur.Elem.Kind != KindObject {
				return fmt.Errorf("field %q: wildcard under a node that is not an array of objects: %w",
					f.ValueName, ErrWildcardPlacement)
			}
			cur = cur.Elem
			continue
		}

		if cur.Kind != KindObject {
			return fmt.Errorf("field %q: segment %q is nested under a non-object node: %w",
				f.ValueName, segment, ErrStructuralConflict)
		}

		child := cur.Property(segment)
		if child == nil {
			// Lookahead: a following "*" means this segment is an array of
			// objects, anything else a plain object.
			if segments[i+1] == "*" {
				child = &Node{Kind: KindArray, Elem: newObject(), synthesized: true}
				child.Elem.synthesized = true
			} else {
				child = &Node{Kind: KindObject, synthesized: true}
			}
			cur.setProperty(segment, child)
		}
		cur = child
	}

	if cur.Kind != KindObject {
		return fmt.Errorf("field %q: leaf %q is nested under a non-object node: %w",
			f.ValueName, leaf, ErrStructuralConflict)
	}

	node, err := resolveLeaf(f, kind)
	if err != nil {
		return err
	}

	if existing := cur.Property(leaf); existing != nil && existing.synthesized {
		// Longer paths already claimed this position as a container. A leaf
		// declared with a compatible empty container shape only contributes
		// its metadata; anything else contradicts the nested fields.
		if adoptInto(existing, node) {
			return nil
		}
		return fmt.Errorf("field %q: declared type %q conflicts with fields nested under %q: %w",
			f.ValueName, f.ValueType, leaf, ErrStructuralConflict)
	}

	// A duplicate leaf path overwrites the earlier one (last write wins,
	// preserved from the upstream generator) but keeps its sibling position.
	cur.setProperty(leaf, node)
	return nil
}

// adoptInto merges a declared empty-container leaf into an existing
// synthesized container of the same shape. Reports whether it merged.
func adoptInto(existing, leaf *Node) bool {
	switch {
	case existing.Kind == KindObject && leaf.Kind == KindObject && len(leaf.Properties) == 0:
	case existing.Kind == KindArray && leaf.Kind == KindArray &&
		leaf.Elem != nil && leaf.Elem.Kind == KindObject && len(leaf.Elem.Properties) == 0:
	default:
		return false
	}
	existing.Optional = leaf.Optional
	existing.Doc = leaf.Doc
	existing.synthesized = false
	return true
}
