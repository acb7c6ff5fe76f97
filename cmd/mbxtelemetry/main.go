// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mbxtelemetry inspects and changes the telemetry state of an application.
//
// The application and its storage are selected by the TELEMETRY_PACKAGE,
// TELEMETRY_PREFS_DIR, TELEMETRY_PREFS_BACKEND and TELEMETRY_MANIFEST_DIR
// environment variables.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mapbox/telemetry-go"
	"github.com/mapbox/telemetry-go/prefs"
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	prefs.SetLogOutput(os.Stderr)
	cfg, err := telemetry.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		usage()
		os.Exit(2)
	}
}

func run(cfg telemetry.Config, args []string, w io.Writer) error {
	if len(args) > 0 && args[0] == "help" {
		flag.CommandLine.SetOutput(w)
		flag.Usage()
		return nil
	}

	app, err := telemetry.Open(cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	app.Logger = log.New(os.Stderr, "mbxtelemetry: ", 0)
	e := telemetry.NewEnabler(app, true)

	if len(args) == 0 {
		printSetting(w, cfg, e)
		return nil
	}
	switch cmd := args[0]; cmd {
	case "set":
		return setState(w, e, args)
	case "check":
		if e.EventsEnabled() {
			fmt.Fprintln(w, "enabled")
		} else {
			fmt.Fprintln(w, "disabled")
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printSetting(w io.Writer, cfg telemetry.Config, e *telemetry.Enabler) {
	fmt.Fprintln(w, "[-h for help]")
	fmt.Fprintf(w, "state:    %s\n", e.State())
	fmt.Fprintf(w, "events:   %t\n", e.EventsEnabled())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package: ", cfg.PackageName)
	fmt.Fprintln(w, "backend: ", cfg.PrefsBackend)
	fmt.Fprintln(w, "prefsdir:", cfg.PrefsDir)
	fmt.Fprintln(w, "manifest:", cfg.ManifestDir)
}

func setState(w io.Writer, e *telemetry.Enabler, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 args for set, not %d", len(args))
	}
	s, ok := telemetry.ParseState(strings.ToUpper(args[1]))
	if !ok {
		return fmt.Errorf("invalid telemetry state %q", args[1])
	}
	fmt.Fprintf(w, "state: %s\n", e.UpdateState(s))
	return nil
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "\tmbxtelemetry")
	fmt.Fprintln(w, "\tmbxtelemetry set <enabled|disabled|override|config_disabled>")
	fmt.Fprintln(w, "\tmbxtelemetry check")
	fmt.Fprintln(w, "\tmbxtelemetry help")
	fmt.Fprintln(w, "Flags:")
	flag.CommandLine.PrintDefaults()
}
