// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"fmt"
	"path/filepath"

	it "github.com/mapbox/telemetry-go/internal/telemetry"
	"github.com/mapbox/telemetry-go/manifest"
	"github.com/mapbox/telemetry-go/prefs"
)

// Open returns an App backed by the preference store and manifest
// directory named in cfg. Unset fields of cfg take the defaults
// documented on [Config].
//
// The caller must Close the App to be sure queued state writes reach
// storage.
func Open(cfg Config) (*App, error) {
	if err := cfg.complete(); err != nil {
		return nil, err
	}
	var (
		p   *prefs.Prefs
		err error
	)
	switch cfg.PrefsBackend {
	case BackendFile:
		p, err = prefs.OpenFile(filepath.Join(cfg.PrefsDir, cfg.PackageName), it.PreferencesName)
	case BackendSQLite:
		p, err = prefs.OpenSQLite(filepath.Join(cfg.PrefsDir, cfg.PackageName+".db"), it.PreferencesName)
	}
	if err != nil {
		return nil, fmt.Errorf("opening preferences: %w", err)
	}
	return &App{
		PackageName: cfg.PackageName,
		Preferences: p,
		Packages:    manifest.Dir(cfg.ManifestDir),
		owned:       p,
	}, nil
}

// Flush waits for queued preference writes made through an App
// returned by Open.
func (a *App) Flush() {
	if a != nil && a.owned != nil {
		a.owned.Flush()
	}
}

// Close flushes queued writes and closes the preference store opened
// by Open. It is a no-op for other Apps.
func (a *App) Close() error {
	if a == nil || a.owned == nil {
		return nil
	}
	return a.owned.Close()
}
