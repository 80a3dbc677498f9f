// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package typetree

import (
	"fmt"
	"strings"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
)

// resolveLeaf maps one field descriptor to a fully annotated node. The
// returned node is a leaf of the path tree but may itself be compound when
// the declared type is Object or Array<T>.
func resolveLeaf(f protocol.Field, kind FieldListKind) (*Node, error) {
	node, err := resolveType(f.ValueType, f.ValueName)
	if err != nil {
		return nil, err
	}

	if f.ValueDescription != "" {
		node.Doc = strings.Split(strings.ReplaceAll(f.ValueDescription, "\r\n", "\n"), "\n")
	}

	// Restriction and default-behavior notes, like optionality, exist only
	// on request parameters.
	if kind == RequestParams {
		if f.ValueRestrictions != "" {
			node.Doc = append(node.Doc, "@restrictions "+f.ValueRestrictions)
		}
		if f.ValueOptionalBehavior != "" {
			node.Doc = append(node.Doc, "@defaultValue "+f.ValueOptionalBehavior)
		}
		if f.ValueOptional != nil {
			node.Optional = *f.ValueOptional
		}
	}

	return node, nil
}

func resolveType(declared, path string) (*Node, error) {
	switch declared {
	case "Boolean":
		return &Node{Kind: KindBoolean}, nil
	case "String":
		return &Node{Kind: KindString}, nil
	case "Number":
		return &Node{Kind: KindNumber}, nil
	case "Object":
		return &Node{Kind: KindObject}, nil
	case "Any":
		return &Node{Kind: KindAny}, nil
	}

	if inner, ok := cutArray(declared); ok {
		elem, err := resolveType(inner, path)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindArray, Elem: elem}, nil
	}

	return nil, fmt.Errorf("field %q: declared type %q: %w", path, declared, ErrUnknownType)
}

// cutArray extracts T from "Array<T>".
func cutArray(declared string) (string, bool) {
	rest, ok := strings.CutPrefix(declared, "Array<")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ">")
}
