// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package telemetry manages the persisted telemetry state.
package telemetry

import (
	"strconv"

	"github.com/mapbox/telemetry-go/prefs"
)

// A State is the user's telemetry consent state.
type State int

const (
	Enabled State = iota
	Disabled
	Override
	ConfigDisabled
)

const (
	// PreferencesName names the preference store holding the state.
	PreferencesName = "MapboxSharedPreferences"
	// StateKey is the preference key holding the state name. It must not
	// change between releases.
	StateKey = "mapboxTelemetryState"
)

var names = [...]string{
	Enabled:        "ENABLED",
	Disabled:       "DISABLED",
	Override:       "OVERRIDE",
	ConfigDisabled: "CONFIG_DISABLED",
}

var byName = map[string]State{
	"ENABLED":         Enabled,
	"DISABLED":        Disabled,
	"OVERRIDE":        Override,
	"CONFIG_DISABLED": ConfigDisabled,
}

// String returns the persisted name of s.
func (s State) String() string {
	if s < 0 || int(s) >= len(names) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return names[s]
}

// Enabled reports whether s contributes to telemetry being enabled.
func (s State) Enabled() bool {
	switch s {
	case Enabled, Override:
		return true
	}
	return false
}

// ParseState returns the State with the given persisted name.
func ParseState(name string) (State, bool) {
	s, ok := byName[name]
	return s, ok
}

// States returns the four states in declaration order.
func States() []State {
	return []State{Enabled, Disabled, Override, ConfigDisabled}
}

// Lookup returns the state held in store.
// An absent or unrecognized value yields Enabled.
func Lookup(store prefs.Store) State {
	if store == nil {
		return Enabled
	}
	s, ok := ParseState(store.String(StateKey, names[Enabled]))
	if !ok {
		return Enabled // default
	}
	return s
}

// Update queues s to be written to store and returns s.
// The write completes in the background.
func Update(store prefs.Store, s State) State {
	if store == nil {
		return s
	}
	store.Apply(StateKey, s.String())
	return s
}
