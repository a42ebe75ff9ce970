// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

//go:build tools

// Package main pins test-only dependencies used by the integration suites.
package main

import (
	_ "github.com/onsi/ginkgo/v2"
	_ "github.com/onsi/gomega"
)
