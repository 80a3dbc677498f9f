// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package protocol

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parse decodes a protocol document from raw bytes. The format is chosen by
// the file name extension: .json, .yaml or .yml.
func Parse(data []byte, name string) (*Protocol, error) {
	var proto Protocol

	switch {
	case strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml"):
		if err := yaml.Unmarshal(data, &proto); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case strings.HasSuffix(name, ".json"):
		if err := json.Unmarshal(data, &proto); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format: %s", name)
	}

	return &proto, nil
}

// Loader loads protocol documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a protocol document file.
func (l *Loader) LoadFile(filePath string) (*Protocol, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Parse(data, filePath)
}
