// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
)

func boolPtr(b bool) *bool { return &b }

func TestTranslate_EventSection(t *testing.T) {
	proto := &protocol.Protocol{
		Events: []protocol.Event{
			{
				EventType:   "SceneItemSelected",
				Description: "A scene item has been selected.",
				DataFields: []protocol.Field{
					{ValueName: "sceneName", ValueType: "String", ValueDescription: "Name of the scene"},
					{ValueName: "sceneItemId", ValueType: "Number"},
				},
			},
		},
	}

	translator := &Translator{}
	output, err := translator.Translate(proto)
	require.NoError(t, err)

	result := string(output)
	assert.Contains(t, result, "### SceneItemSelected")
	assert.Contains(t, result, "A scene item has been selected.")
	assert.Contains(t, result, "| `sceneName` | string | Name of the scene |")
	assert.Contains(t, result, "| `sceneItemId` | number |  |")
}

func TestTranslate_RequestSection(t *testing.T) {
	proto := &protocol.Protocol{
		Requests: []protocol.Request{
			{
				RequestType: "SetSceneName",
				Description: "Sets the name of a scene.",
				RequestFields: []protocol.Field{
					{ValueName: "sceneName", ValueType: "String"},
					{ValueName: "newSceneName", ValueType: "String", ValueOptional: boolPtr(true)},
				},
			},
		},
	}

	translator := &Translator{}
	output, err := translator.Translate(proto)
	require.NoError(t, err)

	result := string(output)
	assert.Contains(t, result, "### SetSceneName")
	assert.Contains(t, result, "| `sceneName` | string | No |")
	assert.Contains(t, result, "| `newSceneName` | string | Yes |")
	assert.Contains(t, result, "_No response fields._")
}

func TestTranslate_NestedFieldsFlattened(t *testing.T) {
	proto := &protocol.Protocol{
		Events: []protocol.Event{
			{
				EventType: "SceneListChanged",
				DataFields: []protocol.Field{
					{ValueName: "scenes.*.sceneName", ValueType: "String"},
					{ValueName: "transform.position.x", ValueType: "Number"},
				},
			},
		},
	}

	translator := &Translator{}
	output, err := translator.Translate(proto)
	require.NoError(t, err)

	result := string(output)
	assert.Contains(t, result, "| `scenes` | array of object |")
	assert.Contains(t, result, "| `scenes.*.sceneName` | string |")
	assert.Contains(t, result, "| `transform.position.x` | number |")
}

func TestTranslate_NoAssociatedData(t *testing.T) {
	proto := &protocol.Protocol{
		Events: []protocol.Event{{EventType: "ExitStarted", Description: "Shutdown began."}},
	}

	translator := &Translator{}
	output, err := translator.Translate(proto)
	require.NoError(t, err)

	assert.Contains(t, string(output), "_No associated data._")
}

func TestTranslate_Enums(t *testing.T) {
	proto := &protocol.Protocol{
		Enums: []protocol.Enum{
			{
				EnumType: "WebSocketCloseCode",
				EnumIdentifiers: []protocol.EnumIdentifier{
					{EnumIdentifier: "DontClose", EnumValue: float64(0), Description: "For internal use only."},
				},
			},
		},
	}

	translator := &Translator{}
	output, err := translator.Translate(proto)
	require.NoError(t, err)

	result := string(output)
	assert.Contains(t, result, "### WebSocketCloseCode")
	assert.Contains(t, result, "| `DontClose` | `0` | For internal use only. |")
}

func TestTranslate_BuildFailurePropagates(t *testing.T) {
	proto := &protocol.Protocol{
		Requests: []protocol.Request{
			{
				RequestType:   "Broken",
				RequestFields: []protocol.Field{{ValueName: "x", ValueType: "Whatever"}},
			},
		},
	}

	translator := &Translator{}
	_, err := translator.Translate(proto)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}
