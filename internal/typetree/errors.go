// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package typetree

import "errors"

var (
	// ErrUnknownType indicates a declared type outside the protocol's
	// vocabulary (Boolean, String, Number, Object, Any, Array<T>).
	ErrUnknownType = errors.New("unknown declared type")

	// ErrStructuralConflict indicates two field paths implying different
	// shapes for the same tree position (e.g. "foo" declared as a scalar
	// while "foo.bar" requires "foo" to be an object).
	ErrStructuralConflict = errors.New("conflicting field path structure")

	// ErrWildcardPlacement indicates a "*" segment where none is supported:
	// as the final path segment, or under a node that is not an array of
	// objects.
	ErrWildcardPlacement = errors.New("unsupported wildcard placement")
)
