// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
	"github.com/letyournerdbeheard/obsgen/internal/typetree"
)

func TestPrepare_EmptyFieldListsYieldNilTrees(t *testing.T) {
	proto := &protocol.Protocol{
		Requests: []protocol.Request{{RequestType: "GetStats"}},
		Events:   []protocol.Event{{EventType: "ExitStarted"}},
	}

	data, err := Prepare(proto)
	require.NoError(t, err)
	require.Len(t, data.Requests, 1)
	require.Len(t, data.Events, 1)

	assert.Nil(t, data.Requests[0].Params)
	assert.Nil(t, data.Requests[0].Response)
	assert.Nil(t, data.Events[0].Payload)
}

func TestPrepare_BuildsTreesPerEntity(t *testing.T) {
	proto := &protocol.Protocol{
		Requests: []protocol.Request{
			{
				RequestType:    "GetSceneList",
				Description:    "Gets an array of all scenes in OBS.",
				ResponseFields: []protocol.Field{{ValueName: "scenes.*.sceneName", ValueType: "String"}},
			},
		},
		Events: []protocol.Event{
			{
				EventType:  "CurrentSceneChanged",
				DataFields: []protocol.Field{{ValueName: "sceneName", ValueType: "String"}},
			},
		},
	}

	data, err := Prepare(proto)
	require.NoError(t, err)

	resp := data.Requests[0].Response
	require.NotNil(t, resp)
	scenes := resp.Property("scenes")
	require.NotNil(t, scenes)
	assert.Equal(t, typetree.KindArray, scenes.Kind)

	payload := data.Events[0].Payload
	require.NotNil(t, payload)
	assert.NotNil(t, payload.Property("sceneName"))

	assert.Equal(t, []string{"Gets an array of all scenes in OBS."}, data.Requests[0].Doc)
}

func TestPrepare_FailureNamesEntity(t *testing.T) {
	proto := &protocol.Protocol{
		Events: []protocol.Event{
			{
				EventType: "BadEvent",
				DataFields: []protocol.Field{
					{ValueName: "b.c", ValueType: "Number"},
					{ValueName: "b", ValueType: "String"},
				},
			},
		},
	}

	_, err := Prepare(proto)
	require.Error(t, err)
	assert.ErrorIs(t, err, typetree.ErrStructuralConflict)
	assert.Contains(t, err.Error(), "BadEvent")
}

func TestPrepare_ResponseFailureNamesRequest(t *testing.T) {
	proto := &protocol.Protocol{
		Requests: []protocol.Request{
			{
				RequestType:    "BadRequest",
				ResponseFields: []protocol.Field{{ValueName: "x", ValueType: "Mystery"}},
			},
		},
	}

	_, err := Prepare(proto)
	require.Error(t, err)
	assert.ErrorIs(t, err, typetree.ErrUnknownType)
	assert.Contains(t, err.Error(), "BadRequest")
}

func TestPrepare_PassesEnumsThrough(t *testing.T) {
	proto := &protocol.Protocol{
		Enums: []protocol.Enum{{EnumType: "ObsOutputState"}},
	}

	data, err := Prepare(proto)
	require.NoError(t, err)
	require.Len(t, data.Enums, 1)
	assert.Equal(t, "ObsOutputState", data.Enums[0].EnumType)
}
