// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

// MetaDataEnableEvents is the manifest metadata key that can turn off
// events for the application. It defaults to true.
const MetaDataEnableEvents = "com.mapbox.EnableEvents"

// An Enabler reads and writes the telemetry state, either through the
// application's preferences or in memory only.
// An Enabler is not safe for concurrent use.
type Enabler struct {
	app             *App
	fromPreferences bool
	state           State // used when !fromPreferences
}

// NewEnabler returns an Enabler for app. If fromPreferences is set, the
// state lives in app's preferences; otherwise it lives in the Enabler,
// starts as Enabled, and is never persisted.
func NewEnabler(app *App, fromPreferences bool) *Enabler {
	return &Enabler{app: app, fromPreferences: fromPreferences, state: Enabled}
}

// State returns the current telemetry state.
func (e *Enabler) State() State {
	if e.fromPreferences {
		return StateFromPreferences(e.app)
	}
	return e.state
}

// UpdateState sets the telemetry state and returns it.
func (e *Enabler) UpdateState(s State) State {
	if e.fromPreferences {
		return UpdateStateInPreferences(e.app, s)
	}
	e.state = s
	return e.state
}

// EventsEnabled reports whether telemetry events should be sent.
//
// Disabled always disables events and Override always enables them.
// Otherwise events are enabled only if the state is Enabled and the
// manifest does not set [MetaDataEnableEvents] to false.
func (e *Enabler) EventsEnabled() bool {
	enabled := e.app.manifestEnabled()

	switch s := e.State(); s {
	case Disabled:
		return false
	case Override:
		return true
	default:
		// Includes ConfigDisabled.
		return enabled && s == Enabled
	}
}

// manifestEnabled returns the manifest's MetaDataEnableEvents flag.
// Failing to read the manifest counts as the flag being absent.
func (a *App) manifestEnabled() bool {
	if a == nil || a.Packages == nil {
		return true
	}
	info, err := a.Packages.ApplicationInfo(a.PackageName)
	if err != nil {
		a.logf("telemetry: reading manifest: %v", err)
		return true
	}
	return info.Bool(MetaDataEnableEvents, true)
}
