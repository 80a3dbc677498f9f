// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

// Package translate provides protocol document translation utilities.
package translate

import (
	"fmt"
	"sort"

	"github.com/letyournerdbeheard/obsgen/internal/protocol"
)

// Translator defines the interface all output-target translators implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "typescript")
	Name() string

	// Translate renders the whole protocol document for the target format
	Translate(proto *protocol.Protocol) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".ts")
	FileExtension() string
}

var translators = make(map[string]Translator)

// Register adds a translator to the registry.
func Register(t Translator) {
	translators[t.Name()] = t
}

// Get retrieves a translator by name.
func Get(name string) (Translator, error) {
	t, ok := translators[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func Available() []string {
	names := make([]string, 0, len(translators))
	for name := range translators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
