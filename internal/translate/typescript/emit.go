// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package typescript

import (
	"strings"

	"github.com/letyournerdbeheard/obsgen/internal/typetree"
)

const (
	// opaqueJSON is the spelling for an unconstrained JSON value. An object
	// with no known properties is indistinguishable from one, so empty
	// object nodes widen to the same spelling.
	opaqueJSON = "JsonObject"

	// noAssociatedData marks entities whose field list is empty. This is
	// distinct from an object leaf with no declared sub-fields, which
	// renders as opaqueJSON.
	noAssociatedData = "never"
)

// RenderType renders a type tree node as a TypeScript type expression with no
// leading indentation.
func RenderType(n *typetree.Node) string {
	return RenderTypeIndented(n, 0)
}

// RenderTypeIndented renders a node embedded at the given indentation depth.
// The same tree always renders to byte-identical text; object properties keep
// their stored insertion order.
func RenderTypeIndented(n *typetree.Node, depth int) string {
	switch n.Kind {
	case typetree.KindString:
		return "string"
	case typetree.KindNumber:
		return "number"
	case typetree.KindBoolean:
		return "boolean"
	case typetree.KindAny:
		return opaqueJSON
	case typetree.KindArray:
		return RenderTypeIndented(n.Elem, depth) + "[]"
	case typetree.KindObject:
		if len(n.Properties) == 0 {
			return opaqueJSON
		}
		return renderObject(n, depth)
	}
	return opaqueJSON
}

func renderObject(n *typetree.Node, depth int) string {
	indent := strings.Repeat("\t", depth+1)

	var b strings.Builder
	b.WriteString("{\n")
	for _, p := range n.Properties {
		b.WriteString(docBlock(p.Node.Doc, indent))
		b.WriteString(indent)
		b.WriteString(propertyName(p.Name))
		if p.Node.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(RenderTypeIndented(p.Node, depth+1))
		b.WriteString(";\n")
	}
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteString("}")
	return b.String()
}

// docBlock renders documentation lines as a JSDoc comment, or "" when there
// is nothing to say. Every line it returns ends in a newline so it can sit
// directly above the field.
func docBlock(lines []string, indent string) string {
	if len(lines) == 0 {
		return ""
	}
	if len(lines) == 1 {
		return indent + "/** " + lines[0] + " */\n"
	}

	var b strings.Builder
	b.WriteString(indent + "/**\n")
	for _, line := range lines {
		b.WriteString(strings.TrimRight(indent+" * "+line, " "))
		b.WriteString("\n")
	}
	b.WriteString(indent + " */\n")
	return b.String()
}

// propertyName quotes names that are not plain TypeScript identifiers.
func propertyName(name string) string {
	if isIdentifier(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "\\'") + "'"
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
