// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// OpenFile opens the store name kept as a JSON object in dir/name.json,
// creating dir if needed. A missing file is an empty store. A file that
// does not hold a JSON object of strings is also treated as empty, and is
// replaced by the next commit.
func OpenFile(dir, name string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create preferences directory: %w", err)
	}
	return open(name, &fileBackend{path: filepath.Join(dir, name+".json")})
}

type fileBackend struct {
	path string
}

func (b *fileBackend) load() (map[string]string, error) {
	unlock, err := b.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		logger.Printf("prefs %s: ignoring corrupt file: %v", b.path, err)
		return nil, nil
	}
	return values, nil
}

// save replaces the file atomically: readers see either the old or the
// new snapshot, never a partial one.
func (b *fileBackend) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "\t")
	if err != nil {
		return err
	}
	unlock, err := b.lock()
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(filepath.Dir(b.path), filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), b.path)
}

func (b *fileBackend) close() error { return nil }

// lock takes the advisory lock shared by every process using the file.
func (b *fileBackend) lock() (unlock func(), err error) {
	f, err := os.OpenFile(b.path+".lock", os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening preferences lock: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("locking preferences: %w", err)
	}
	return func() {
		unlockFile(f)
		f.Close()
	}, nil
}
