// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest reads the static metadata shipped with an application
// package.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNameNotFound is returned when no application has the requested
// package name.
var ErrNameNotFound = errors.New("package name not found")

// An ApplicationInfo is the parsed manifest of one application.
type ApplicationInfo struct {
	PackageName string         `json:"package"`
	MetaData    map[string]any `json:"metaData,omitempty"`
}

// Bool returns the boolean metadata value for key.
// It returns def if info has no metadata, or key is absent or not a boolean.
func (info *ApplicationInfo) Bool(key string, def bool) bool {
	if info == nil || info.MetaData == nil {
		return def
	}
	b, ok := info.MetaData[key].(bool)
	if !ok {
		return def
	}
	return b
}

// A Resolver looks up application manifests by package name.
type Resolver interface {
	ApplicationInfo(pkg string) (*ApplicationInfo, error)
}

// Dir is a Resolver reading manifests from files named <pkg>.json
// in the named directory.
type Dir string

func (d Dir) ApplicationInfo(pkg string) (*ApplicationInfo, error) {
	if pkg == "" || filepath.Base(pkg) != pkg {
		return nil, fmt.Errorf("%q: %w", pkg, ErrNameNotFound)
	}
	data, err := os.ReadFile(filepath.Join(string(d), pkg+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", pkg, ErrNameNotFound)
	}
	if err != nil {
		return nil, err
	}
	info, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pkg, err)
	}
	if info.PackageName == "" {
		info.PackageName = pkg
	}
	return info, nil
}

// Parse decodes a JSON manifest.
func Parse(data []byte) (*ApplicationInfo, error) {
	info := new(ApplicationInfo)
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return info, nil
}

// Static is a Resolver over a fixed set of manifests keyed by package name.
type Static map[string]*ApplicationInfo

func (s Static) ApplicationInfo(pkg string) (*ApplicationInfo, error) {
	info, ok := s[pkg]
	if !ok {
		return nil, fmt.Errorf("%q: %w", pkg, ErrNameNotFound)
	}
	return info, nil
}
