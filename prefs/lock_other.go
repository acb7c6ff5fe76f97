// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix && !windows

package prefs

import "os"

// File locking is unavailable (js, wasip1, plan9); writers within one
// process are still serialized by Prefs.

func lockFile(f *os.File) error   { return nil }
func unlockFile(f *os.File) error { return nil }
