// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/letyournerdbeheard/obsgen/internal/config"
	"github.com/letyournerdbeheard/obsgen/internal/protocol"
)

var (
	// ErrNotInitialized indicates no obsgen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in an obsgen project (obsgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDocumentNotFound indicates the protocol document referenced by config
	// could not be read.
	ErrDocumentNotFound = errors.New("protocol document not found")

	// ErrInvalidDocument indicates the protocol document couldn't be parsed.
	ErrInvalidDocument = errors.New("invalid protocol document")
)

// ConfigFileName is the name of the obsgen configuration file.
const ConfigFileName = "obsgen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the parsed protocol
// document.
type Context struct {
	Config   *config.Config
	Protocol *protocol.Protocol
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the obsgen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	proto, err := LoadDocument(ctx, cfg.Schema)
	if err != nil {
		return nil, err
	}

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:   cfg,
		Protocol: proto,
	}), nil
}

// LoadDocument loads a protocol document from a local file path or an
// http(s) URL.
func LoadDocument(ctx context.Context, ref string) (*protocol.Protocol, error) {
	if protocol.IsURL(ref) {
		proto, err := protocol.Fetch(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return proto, nil
	}

	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, ref)
	}

	loader := protocol.NewLoader(os.DirFS(filepath.Dir(ref)))
	proto, err := loader.LoadFile(filepath.Base(ref))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return proto, nil
}

// From extracts the obsgen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessCtx
	}
	return nil
}
