// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs implements application-scoped key-value preference stores.
//
// A [Prefs] serves reads from memory and persists writes in the background:
// [Prefs.Apply] returns as soon as the in-memory value is updated, and the
// commit to the backing file or database happens later, with no completion
// signal. Use [Prefs.Flush] to wait for pending commits.
package prefs

import (
	"io"
	"log"
	"maps"
	"sync"

	"golang.org/x/sync/errgroup"
)

// A Store is a string-valued preference store.
type Store interface {
	// String returns the value for key, or def if key is unset.
	String(key, def string) string
	// Apply sets key to value. Persistence, if any, is asynchronous.
	Apply(key, value string)
	// Remove unsets key. Persistence, if any, is asynchronous.
	Remove(key string)
}

var logger = log.New(io.Discard, "", 0)

// SetLogOutput sets the destination of commit failure reports.
// By default they are discarded.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// A backend persists complete snapshots of a store.
type backend interface {
	load() (map[string]string, error)
	save(values map[string]string) error
	close() error
}

// Prefs is a Store cached in memory over a persistent backend.
// It is safe for concurrent use.
type Prefs struct {
	name string
	b    backend

	mu     sync.Mutex
	values map[string]string
	gen    uint64 // incremented on every mutation

	commitMu  sync.Mutex
	committed uint64 // gen of the last saved snapshot
	writes    errgroup.Group
}

func open(name string, b backend) (*Prefs, error) {
	values, err := b.load()
	if err != nil {
		b.close()
		return nil, err
	}
	if values == nil {
		values = make(map[string]string)
	}
	return &Prefs{name: name, b: b, values: values}, nil
}

// Name returns the name the store was opened with.
func (p *Prefs) Name() string { return p.name }

func (p *Prefs) String(key, def string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// All returns a copy of every key and value in the store.
func (p *Prefs) All() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.values)
}

func (p *Prefs) Apply(key, value string) {
	p.mu.Lock()
	p.values[key] = value
	p.gen++
	p.mu.Unlock()
	p.writes.Go(p.commit)
}

func (p *Prefs) Remove(key string) {
	p.mu.Lock()
	if _, ok := p.values[key]; !ok {
		p.mu.Unlock()
		return
	}
	delete(p.values, key)
	p.gen++
	p.mu.Unlock()
	p.writes.Go(p.commit)
}

// commit saves the latest snapshot, unless a newer or equal one has
// already been saved. Failures are logged, not returned: callers of
// Apply have no way to observe them.
func (p *Prefs) commit() error {
	p.commitMu.Lock()
	defer p.commitMu.Unlock()

	p.mu.Lock()
	gen := p.gen
	snapshot := maps.Clone(p.values)
	p.mu.Unlock()

	if gen <= p.committed {
		return nil
	}
	if err := p.b.save(snapshot); err != nil {
		logger.Printf("prefs %s: commit: %v", p.name, err)
		return nil
	}
	p.committed = gen
	return nil
}

// Flush waits for all queued commits to finish.
func (p *Prefs) Flush() {
	p.writes.Wait()
}

// Close flushes pending commits and releases the backend.
// The store must not be used after Close.
func (p *Prefs) Close() error {
	p.Flush()
	return p.b.close()
}
