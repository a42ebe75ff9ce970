// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

// Package main is the entry point for the namedloot CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/namedloot/namedloot/pkg/errutil"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := cmd.Execute(); err != nil {
		errutil.LogError(slog.Default(), "namedloot failed", err)
		os.Exit(1)
	}
}
