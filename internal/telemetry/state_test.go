// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"testing"

	"github.com/mapbox/telemetry-go/prefs"
)

func TestStateEnabled(t *testing.T) {
	want := map[State]bool{
		Enabled:        true,
		Override:       true,
		Disabled:       false,
		ConfigDisabled: false,
	}
	for _, s := range States() {
		if got := s.Enabled(); got != want[s] {
			t.Errorf("%v.Enabled() = %v, want %v", s, got, want[s])
		}
	}
	if State(42).Enabled() {
		t.Errorf("State(42).Enabled() = true, want false")
	}
}

func TestParseState(t *testing.T) {
	for _, s := range States() {
		got, ok := ParseState(s.String())
		if !ok || got != s {
			t.Errorf("ParseState(%q) = %v, %v, want %v, true", s.String(), got, ok, s)
		}
	}
	for _, name := range []string{"", "enabled", "ON", "State(4)"} {
		if _, ok := ParseState(name); ok {
			t.Errorf("ParseState(%q) succeeded, want failure", name)
		}
	}
	if got := State(4).String(); got != "State(4)" {
		t.Errorf("State(4).String() = %q", got)
	}
}

func TestLookupDefault(t *testing.T) {
	tests := []struct {
		name  string
		store prefs.Store
	}{
		{"nil", nil},
		{"empty", prefs.NewMemory(nil)},
		{"unknown", prefs.NewMemory(map[string]string{StateKey: "SOMETIMES"})},
		{"lowercase", prefs.NewMemory(map[string]string{StateKey: "disabled"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.store); got != Enabled {
				t.Errorf("Lookup() = %v, want %v", got, Enabled)
			}
		})
	}
}

func TestUpdateLookup(t *testing.T) {
	store := prefs.NewMemory(nil)
	for _, s := range States() {
		if got := Update(store, s); got != s {
			t.Errorf("Update(%v) = %v", s, got)
		}
		if got := store.String(StateKey, ""); got != s.String() {
			t.Errorf("after Update(%v), stored %q, want %q", s, got, s.String())
		}
		if got := Lookup(store); got != s {
			t.Errorf("Lookup after Update(%v) = %v", s, got)
		}
	}
	if got := Update(nil, Disabled); got != Disabled {
		t.Errorf("Update(nil, Disabled) = %v", got)
	}
}
