// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Preference backends accepted by [Config.PrefsBackend].
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config controls the behavior of [Open].
type Config struct {
	// PackageName is the application's package name. It scopes the
	// preference store and selects the manifest.
	PackageName string `env:"TELEMETRY_PACKAGE" envDefault:"com.example.app"`

	// PrefsDir is the directory holding preference stores.
	// The default is mapbox/telemetry under os.UserConfigDir.
	PrefsDir string `env:"TELEMETRY_PREFS_DIR"`

	// PrefsBackend is BackendFile or BackendSQLite.
	PrefsBackend string `env:"TELEMETRY_PREFS_BACKEND" envDefault:"file"`

	// ManifestDir is the directory of <package>.json manifests.
	// The default is the manifests subdirectory of PrefsDir.
	ManifestDir string `env:"TELEMETRY_MANIFEST_DIR"`
}

var userConfigDir = os.UserConfigDir

// LoadConfig reads a Config from the environment and fills in defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.complete(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// complete fills in the defaults that depend on the environment
// and validates cfg.
func (cfg *Config) complete() error {
	if cfg.PackageName == "" {
		return fmt.Errorf("missing package name")
	}
	if filepath.Base(cfg.PackageName) != cfg.PackageName {
		return fmt.Errorf("invalid package name %q", cfg.PackageName)
	}
	if cfg.PrefsDir == "" {
		dir, err := userConfigDir()
		if err != nil {
			return fmt.Errorf("cannot locate preferences directory: %w", err)
		}
		cfg.PrefsDir = filepath.Join(dir, "mapbox", "telemetry")
	}
	if cfg.ManifestDir == "" {
		cfg.ManifestDir = filepath.Join(cfg.PrefsDir, "manifests")
	}
	switch cfg.PrefsBackend {
	case "":
		cfg.PrefsBackend = BackendFile
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid preferences backend %q", cfg.PrefsBackend)
	}
	return nil
}
