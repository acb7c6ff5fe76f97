// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createTable = `CREATE TABLE IF NOT EXISTS preferences (
	store TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (store, key)
)`

// OpenSQLite opens the store name kept in the SQLite database at path.
// Several stores may share one database. Pass ":memory:" as path for a
// database that lives only as long as the returned Prefs.
func OpenSQLite(path, name string) (*Prefs, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("cannot create preferences directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	// One connection: an in-memory database is private to its connection,
	// and sqlite serializes writers anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating preferences table: %w", err)
	}
	return open(name, &sqliteBackend{db: db, store: name})
}

type sqliteBackend struct {
	db    *sql.DB
	store string
}

func (b *sqliteBackend) load() (map[string]string, error) {
	rows, err := b.db.Query("SELECT key, value FROM preferences WHERE store = ?", b.store)
	if err != nil {
		return nil, fmt.Errorf("querying preferences: %w", err)
	}
	defer rows.Close()
	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}
	return values, nil
}

func (b *sqliteBackend) save(values map[string]string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.Exec("DELETE FROM preferences WHERE store = ?", b.store); err != nil {
		return fmt.Errorf("clearing preferences: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO preferences (store, key, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()
	for k, v := range values {
		if _, err := stmt.Exec(b.store, k, v); err != nil {
			return fmt.Errorf("writing preference %q: %w", k, err)
		}
	}
	return tx.Commit()
}

func (b *sqliteBackend) close() error {
	return b.db.Close()
}
