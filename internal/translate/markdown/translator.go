// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

// Package markdown renders protocol documents as markdown reference
// documentation.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
	"github.com/letyournerdbeheard/obsgen/internal/translate"
	"github.com/letyournerdbeheard/obsgen/internal/typetree"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "markdown.md.tmpl"))

func init() {
	translate.Register(&Translator{})
}

// Translator translates protocol documents to markdown documentation.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate converts the protocol document to a markdown reference.
func (t *Translator) Translate(proto *protocol.Protocol) ([]byte, error) {
	data, err := translate.Prepare(proto)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare protocol data: %w", err)
	}

	doc := document{Enums: data.Enums}

	for _, ev := range data.Events {
		doc.Events = append(doc.Events, section{
			Name:        ev.Name,
			Description: strings.Join(ev.Doc, " "),
			Fields:      flatten(ev.Payload, ""),
		})
	}
	for _, r := range data.Requests {
		doc.Requests = append(doc.Requests, requestSection{
			Name:        r.Name,
			Description: strings.Join(r.Doc, " "),
			Params:      flatten(r.Params, ""),
			Response:    flatten(r.Response, ""),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", doc); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

type document struct {
	Enums    []protocol.Enum
	Events   []section
	Requests []requestSection
}

type section struct {
	Name        string
	Description string
	Fields      []fieldRow
}

type requestSection struct {
	Name        string
	Description string
	Params      []fieldRow
	Response    []fieldRow
}

type fieldRow struct {
	Path        string
	Type        string
	Optional    string
	Description string
}

// flatten walks a tree back into dotted-path table rows, the inverse of the
// builder's unflattening. Array-of-object elements contribute rows under a
// ".*" path segment.
func flatten(n *typetree.Node, prefix string) []fieldRow {
	if n == nil {
		return nil
	}

	var rows []fieldRow
	for _, p := range n.Properties {
		path := p.Name
		if prefix != "" {
			path = prefix + "." + p.Name
		}

		optional := "No"
		if p.Node.Optional {
			optional = "Yes"
		}
		rows = append(rows, fieldRow{
			Path:        path,
			Type:        typeLabel(p.Node),
			Optional:    optional,
			Description: strings.Join(p.Node.Doc, " "),
		})

		switch {
		case p.Node.Kind == typetree.KindObject:
			rows = append(rows, flatten(p.Node, path)...)
		case p.Node.Kind == typetree.KindArray && p.Node.Elem.Kind == typetree.KindObject:
			rows = append(rows, flatten(p.Node.Elem, path+".*")...)
		}
	}
	return rows
}

func typeLabel(n *typetree.Node) string {
	switch n.Kind {
	case typetree.KindString:
		return "string"
	case typetree.KindNumber:
		return "number"
	case typetree.KindBoolean:
		return "boolean"
	case typetree.KindAny:
		return "any"
	case typetree.KindObject:
		return "object"
	case typetree.KindArray:
		return "array of " + typeLabel(n.Elem)
	}
	return "any"
}
