// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package translate

import (
	"fmt"
	"strings"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
	"github.com/letyournerdbeheard/obsgen/internal/typetree"
)

// Data is the tree-resolved form of a protocol document, shared by all
// translators. Entities keep document order.
type Data struct {
	Enums    []protocol.Enum
	Requests []RequestData
	Events   []EventData
}

// RequestData is one request with its parameter and response trees. A nil
// tree means the corresponding field list is empty; translators must emit
// their "no associated data" marker for it, never an empty-object rendering.
type RequestData struct {
	Name     string
	Doc      []string
	Params   *typetree.Node
	Response *typetree.Node
}

// EventData is one event with its payload tree (nil when the event carries
// no data).
type EventData struct {
	Name    string
	Doc     []string
	Payload *typetree.Node
}

// Prepare builds the type trees for every entity of the document. Any build
// failure aborts the whole preparation; translators never see partial data.
func Prepare(proto *protocol.Protocol) (*Data, error) {
	data := &Data{Enums: proto.Enums}

	for _, r := range proto.Requests {
		rd := RequestData{Name: r.RequestType, Doc: docLines(r.Description)}

		if len(r.RequestFields) > 0 {
			tree, err := typetree.Build(r.RequestFields, typetree.RequestParams)
			if err != nil {
				return nil, fmt.Errorf("request %s: %w", r.RequestType, err)
			}
			rd.Params = tree
		}
		if len(r.ResponseFields) > 0 {
			tree, err := typetree.Build(r.ResponseFields, typetree.ResponseData)
			if err != nil {
				return nil, fmt.Errorf("request %s response: %w", r.RequestType, err)
			}
			rd.Response = tree
		}

		data.Requests = append(data.Requests, rd)
	}

	for _, e := range proto.Events {
		ed := EventData{Name: e.EventType, Doc: docLines(e.Description)}

		if len(e.DataFields) > 0 {
			tree, err := typetree.Build(e.DataFields, typetree.EventData)
			if err != nil {
				return nil, fmt.Errorf("event %s: %w", e.EventType, err)
			}
			ed.Payload = tree
		}

		data.Events = append(data.Events, ed)
	}

	return data, nil
}

func docLines(description string) []string {
	if description == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")
}
