// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package protocol

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

// IsURL reports whether ref is an http(s) URL rather than a local file path.
func IsURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// Fetch downloads and parses a protocol document from an http(s) URL.
// The format is chosen by the URL path's extension, defaulting to JSON.
func Fetch(ctx context.Context, rawURL string) (*Protocol, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid document URL %q: %w", rawURL, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", rawURL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}

	name := path.Base(req.URL.Path)
	if path.Ext(name) == "" {
		name += ".json"
	}
	return Parse(data, name)
}
