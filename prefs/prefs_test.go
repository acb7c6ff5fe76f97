// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Each opener returns a store rooted in dir; reopening with the same dir
// must see what the previous store committed.
var openers = map[string]func(t *testing.T, dir, name string) *Prefs{
	"file": func(t *testing.T, dir, name string) *Prefs {
		p, err := OpenFile(dir, name)
		if err != nil {
			t.Fatal(err)
		}
		return p
	},
	"sqlite": func(t *testing.T, dir, name string) *Prefs {
		p, err := OpenSQLite(filepath.Join(dir, "prefs.db"), name)
		if err != nil {
			t.Fatal(err)
		}
		return p
	},
}

func TestPersist(t *testing.T) {
	for backend, openStore := range openers {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			p := openStore(t, dir, "app")
			if got := p.String("k", "def"); got != "def" {
				t.Errorf("String(unset) = %q, want %q", got, "def")
			}
			p.Apply("k", "v1")
			p.Apply("k", "v2")
			p.Apply("other", "x")
			p.Remove("other")
			p.Remove("missing")
			if got := p.String("k", "def"); got != "v2" {
				t.Errorf("String after Apply = %q, want %q", got, "v2")
			}
			if err := p.Close(); err != nil {
				t.Fatal(err)
			}

			p = openStore(t, dir, "app")
			defer p.Close()
			want := map[string]string{"k": "v2"}
			if diff := cmp.Diff(want, p.All()); diff != "" {
				t.Errorf("reopened store mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStoresAreScoped(t *testing.T) {
	for backend, openStore := range openers {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			a := openStore(t, dir, "a")
			a.Apply("k", "from a")
			if err := a.Close(); err != nil {
				t.Fatal(err)
			}
			b := openStore(t, dir, "b")
			defer b.Close()
			if got := b.String("k", "unset"); got != "unset" {
				t.Errorf("store b sees %q written to store a", got)
			}
		})
	}
}

func TestConcurrentApply(t *testing.T) {
	for backend, openStore := range openers {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			p := openStore(t, dir, "app")
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					p.Apply("k", "v")
				}()
			}
			wg.Wait()
			p.Apply("k", "last")
			if err := p.Close(); err != nil {
				t.Fatal(err)
			}
			p = openStore(t, dir, "app")
			defer p.Close()
			if got := p.String("k", ""); got != "last" {
				t.Errorf("after concurrent writes, String = %q, want %q", got, "last")
			}
		})
	}
}

func TestCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.json"), []byte("not json"), 0666); err != nil {
		t.Fatal(err)
	}
	p, err := OpenFile(dir, "app")
	if err != nil {
		t.Fatalf("OpenFile(corrupt) failed: %v", err)
	}
	if got := p.String("k", "def"); got != "def" {
		t.Errorf("String = %q, want default", got)
	}
	p.Apply("k", "v")
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "app.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"k": "v"`) {
		t.Errorf("corrupt file was not replaced, contents:\n%s", data)
	}
}

func TestSQLiteMemory(t *testing.T) {
	p, err := OpenSQLite(":memory:", "app")
	if err != nil {
		t.Fatal(err)
	}
	p.Apply("k", "v")
	p.Flush()
	if got := p.String("k", ""); got != "v" {
		t.Errorf("String = %q, want %q", got, "v")
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

type failingBackend struct {
	mu    sync.Mutex
	saves int
}

func (b *failingBackend) load() (map[string]string, error) { return nil, nil }
func (b *failingBackend) close() error                     { return nil }
func (b *failingBackend) save(map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saves++
	return errors.New("disk full")
}

func TestCommitFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(io.Discard)

	p, err := open("app", new(failingBackend))
	if err != nil {
		t.Fatal(err)
	}
	p.Apply("k", "v")
	p.Flush()
	if got := p.String("k", ""); got != "v" {
		t.Errorf("String after failed commit = %q, want in-memory value %q", got, "v")
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("log = %q, want commit failure", buf.String())
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(map[string]string{"k": "seed"})
	if got := m.String("k", ""); got != "seed" {
		t.Errorf("String = %q, want %q", got, "seed")
	}
	if m.Writes() != 0 {
		t.Errorf("Writes() = %d before any write", m.Writes())
	}
	m.Apply("k", "v")
	m.Remove("gone")
	if m.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", m.Writes())
	}
	if diff := cmp.Diff(map[string]string{"k": "v"}, m.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}
