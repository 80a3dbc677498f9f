// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

// Package typescript renders protocol documents as TypeScript declarations
// for the obs-websocket-js client library.
package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
	"github.com/letyournerdbeheard/obsgen/internal/translate"
	"github.com/letyournerdbeheard/obsgen/internal/typetree"
)

//go:embed typescript.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "typescript.ts.tmpl"))

func init() {
	translate.Register(&Translator{})
}

// Translator translates protocol documents to TypeScript declarations.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "typescript"
}

// FileExtension returns the file extension for TypeScript source files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Translate renders the document as one TypeScript source file containing the
// enum declarations and the event/request/response type maps.
func (t *Translator) Translate(proto *protocol.Protocol) ([]byte, error) {
	data, err := translate.Prepare(proto)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare protocol data: %w", err)
	}

	file := fileData{}

	for _, en := range data.Enums {
		decl := enumDecl{Name: en.EnumType}
		for _, id := range en.EnumIdentifiers {
			decl.Members = append(decl.Members, memberDecl{
				Doc:   docBlock(splitLines(id.Description), "\t"),
				Name:  id.EnumIdentifier,
				Value: enumValue(id.EnumValue),
			})
		}
		file.Enums = append(file.Enums, decl)
	}

	for _, ev := range data.Events {
		file.Events = append(file.Events, entityDecl{
			Doc:  docBlock(ev.Doc, "\t"),
			Name: ev.Name,
			Type: entityType(ev.Payload),
		})
	}
	for _, r := range data.Requests {
		file.Requests = append(file.Requests, entityDecl{
			Doc:  docBlock(r.Doc, "\t"),
			Name: r.Name,
			Type: entityType(r.Params),
		})
		file.Responses = append(file.Responses, entityDecl{
			Name: r.Name,
			Type: entityType(r.Response),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "typescript.ts.tmpl", file); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

type fileData struct {
	Enums     []enumDecl
	Events    []entityDecl
	Requests  []entityDecl
	Responses []entityDecl
}

type enumDecl struct {
	Name    string
	Members []memberDecl
}

type memberDecl struct {
	Doc   string
	Name  string
	Value string
}

type entityDecl struct {
	Doc  string
	Name string
	Type string
}

// entityType renders an entity's tree at interface-member depth, or the
// no-associated-data marker when the entity has no fields at all.
func entityType(n *typetree.Node) string {
	if n == nil {
		return noAssociatedData
	}
	return RenderTypeIndented(n, 1)
}

// exprChars matches enum value expressions such as "(1 << 3)" or
// "(General | Config)", which are emitted verbatim. Expressions may
// reference members declared earlier in the same enum.
var exprChars = regexp.MustCompile(`^[\w\s()<>|&~^+*/-]+$`)

func enumValue(v any) string {
	switch x := v.(type) {
	case string:
		if strings.ContainsAny(x, "()<>|&") && exprChars.MatchString(x) {
			return x
		}
		return "'" + strings.ReplaceAll(x, "'", "\\'") + "'"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
