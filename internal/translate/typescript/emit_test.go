// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
	"github.com/letyournerdbeheard/obsgen/internal/typetree"
)

func boolPtr(b bool) *bool { return &b }

func buildTree(t *testing.T, kind typetree.FieldListKind, fields ...protocol.Field) *typetree.Node {
	t.Helper()
	root, err := typetree.Build(fields, kind)
	require.NoError(t, err)
	return root
}

func TestRenderType_Scalars(t *testing.T) {
	root := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "s", ValueType: "String"},
		protocol.Field{ValueName: "n", ValueType: "Number"},
		protocol.Field{ValueName: "b", ValueType: "Boolean"},
	)

	assert.Equal(t, "string", RenderType(root.Property("s")))
	assert.Equal(t, "number", RenderType(root.Property("n")))
	assert.Equal(t, "boolean", RenderType(root.Property("b")))
}

func TestRenderType_EmptyObjectWidensToOpaque(t *testing.T) {
	root := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "settings", ValueType: "Object"},
		protocol.Field{ValueName: "data", ValueType: "Any"},
	)

	// A declared Object with no nested fields carries no information, so it
	// renders exactly like Any.
	settings := RenderType(root.Property("settings"))
	data := RenderType(root.Property("data"))
	assert.Equal(t, "JsonObject", settings)
	assert.Equal(t, settings, data)
}

func TestRenderType_Arrays(t *testing.T) {
	root := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "values", ValueType: "Array<Number>"},
		protocol.Field{ValueName: "objects", ValueType: "Array<Object>"},
		protocol.Field{ValueName: "anything", ValueType: "Array<Any>"},
		protocol.Field{ValueName: "grid", ValueType: "Array<Array<String>>"},
	)

	assert.Equal(t, "number[]", RenderType(root.Property("values")))
	assert.Equal(t, "JsonObject[]", RenderType(root.Property("objects")))
	assert.Equal(t, "JsonObject[]", RenderType(root.Property("anything")))
	assert.Equal(t, "string[][]", RenderType(root.Property("grid")))
}

func TestRenderType_ObjectWithDocsAndOptionality(t *testing.T) {
	root := buildTree(t, typetree.RequestParams,
		protocol.Field{ValueName: "items.*.name", ValueType: "String", ValueDescription: "Name of the item"},
		protocol.Field{ValueName: "items.*.count", ValueType: "Number", ValueOptional: boolPtr(true)},
	)

	expected := `{
	/** Name of the item */
	name: string;
	count?: number;
}`
	assert.Equal(t, expected, RenderType(root.Property("items").Elem))
	assert.Equal(t, expected+"[]", RenderType(root.Property("items")))
}

func TestRenderType_NestedIndentation(t *testing.T) {
	root := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "outer.inner.value", ValueType: "Boolean"},
	)

	expected := `{
	inner: {
		value: boolean;
	};
}`
	assert.Equal(t, expected, RenderType(root.Property("outer")))
}

func TestRenderType_MultiLineDocBlock(t *testing.T) {
	root := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "state", ValueType: "Number", ValueDescription: "The new state.\nCan be any value."},
	)

	expected := `{
	/**
	 * The new state.
	 * Can be any value.
	 */
	state: number;
}`
	assert.Equal(t, expected, RenderType(root))
}

func TestRenderType_QuotesNonIdentifierNames(t *testing.T) {
	root := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "some-field", ValueType: "String"},
	)

	assert.Contains(t, RenderType(root), "'some-field': string;")
}

func TestRenderType_Deterministic(t *testing.T) {
	// Reordering fields of different parents must not affect the rendering
	// as long as each parent's own field order and the parents' first
	// appearances are unchanged.
	first := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "p.a", ValueType: "String"},
		protocol.Field{ValueName: "q.b", ValueType: "Number"},
		protocol.Field{ValueName: "p.c", ValueType: "Boolean"},
	)
	second := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "p.a", ValueType: "String"},
		protocol.Field{ValueName: "p.c", ValueType: "Boolean"},
		protocol.Field{ValueName: "q.b", ValueType: "Number"},
	)

	assert.Equal(t, RenderType(first), RenderType(second))
	assert.Equal(t, RenderType(first), RenderType(first))
}

func TestRenderType_RoundTripShape(t *testing.T) {
	root := buildTree(t, typetree.EventData,
		protocol.Field{ValueName: "sceneName", ValueType: "String"},
		protocol.Field{ValueName: "sceneItems.*.sourceName", ValueType: "String"},
		protocol.Field{ValueName: "sceneItems.*.sceneItemId", ValueType: "Number"},
		protocol.Field{ValueName: "transform.position.x", ValueType: "Number"},
	)

	rendered := RenderType(root)
	for _, name := range []string{"sceneName", "sceneItems", "sourceName", "sceneItemId", "transform", "position", "x"} {
		assert.Contains(t, rendered, name)
	}
}
