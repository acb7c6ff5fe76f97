// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package telemetry records whether the user consents to telemetry events
// being sent, and decides from that consent and the application manifest
// whether events are enabled.
package telemetry

import (
	"log"

	"github.com/mapbox/telemetry-go/manifest"
	"github.com/mapbox/telemetry-go/prefs"
)

// An App is the handle through which telemetry reaches the host
// application's preferences and manifest.
//
// A nil *App is legal and stands for an application that has not been
// initialized yet: state reads return Enabled, state writes are dropped,
// and the manifest flag reads as absent.
type App struct {
	// PackageName identifies the application to Packages.
	PackageName string

	// Preferences holds the persisted telemetry state.
	// nil is legal and behaves as an empty, unwritable store.
	Preferences prefs.Store

	// Packages resolves the application manifest.
	// nil is legal and means no manifest metadata is available.
	Packages manifest.Resolver

	// Logger receives reports of recovered failures.
	// If nil, the standard logger is used.
	Logger *log.Logger

	// owned is the store opened by Open, released by Close.
	owned *prefs.Prefs
}

func (a *App) logf(format string, args ...any) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (a *App) preferences() prefs.Store {
	if a == nil {
		return nil
	}
	return a.Preferences
}
