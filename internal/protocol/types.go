// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

// Package protocol defines the obs-websocket protocol document model and
// loading utilities.
package protocol

// Field is one flat field descriptor from the protocol document. The
// ValueName is a dot-separated path; the segment "*" stands for "any element
// of the enclosing array" (e.g. "sceneItems.*.sourceName").
type Field struct {
	ValueName             string `json:"valueName" yaml:"valueName"`
	ValueType             string `json:"valueType" yaml:"valueType"`
	ValueDescription      string `json:"valueDescription" yaml:"valueDescription"`
	ValueOptional         *bool  `json:"valueOptional,omitempty" yaml:"valueOptional,omitempty"`
	ValueRestrictions     string `json:"valueRestrictions,omitempty" yaml:"valueRestrictions,omitempty"`
	ValueOptionalBehavior string `json:"valueOptionalBehavior,omitempty" yaml:"valueOptionalBehavior,omitempty"`
}

// EnumIdentifier is one member of an enum section.
type EnumIdentifier struct {
	EnumIdentifier string `json:"enumIdentifier" yaml:"enumIdentifier"`
	EnumValue      any    `json:"enumValue" yaml:"enumValue"`
	Description    string `json:"description" yaml:"description"`
}

// Enum is one enum section of the protocol document.
type Enum struct {
	EnumType        string           `json:"enumType" yaml:"enumType"`
	EnumIdentifiers []EnumIdentifier `json:"enumIdentifiers" yaml:"enumIdentifiers"`
}

// Request describes one request type: its parameter fields and its response
// fields. Both field lists may be empty.
type Request struct {
	RequestType    string  `json:"requestType" yaml:"requestType"`
	Description    string  `json:"description" yaml:"description"`
	RequestFields  []Field `json:"requestFields" yaml:"requestFields"`
	ResponseFields []Field `json:"responseFields" yaml:"responseFields"`
}

// Event describes one event type and its payload fields.
type Event struct {
	EventType   string  `json:"eventType" yaml:"eventType"`
	Description string  `json:"description" yaml:"description"`
	DataFields  []Field `json:"dataFields" yaml:"dataFields"`
}

// Protocol is a parsed protocol document.
type Protocol struct {
	Enums    []Enum    `json:"enums" yaml:"enums"`
	Requests []Request `json:"requests" yaml:"requests"`
	Events   []Event   `json:"events" yaml:"events"`
}
