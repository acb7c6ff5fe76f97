// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	it "github.com/mapbox/telemetry-go/internal/telemetry"
)

// A State is the user's telemetry consent state.
//
// Possible values are:
//   - Enabled: the user has not opted out; events follow the manifest flag
//   - Disabled: the user opted out
//   - Override: events are sent even if the manifest disables them
//   - ConfigDisabled: events were disabled by remote configuration
type State = it.State

const (
	Enabled        = it.Enabled
	Disabled       = it.Disabled
	Override       = it.Override
	ConfigDisabled = it.ConfigDisabled
)

// ParseState returns the State whose persisted name is name,
// as returned by [State.String].
func ParseState(name string) (State, bool) {
	return it.ParseState(name)
}

// States returns every State in declaration order.
func States() []State {
	return it.States()
}

// StateFromPreferences returns the telemetry state persisted in the
// application's preferences.
//
// If nothing was persisted, or the persisted value is not a state name,
// or app is nil, StateFromPreferences returns Enabled.
func StateFromPreferences(app *App) State {
	return it.Lookup(app.preferences())
}

// UpdateStateInPreferences persists s in the application's preferences
// and returns s.
//
// The write is queued and completes in the background; there is no
// signal of its completion. If app is nil, s is returned and nothing is
// written.
func UpdateStateInPreferences(app *App, s State) State {
	return it.Update(app.preferences(), s)
}
