// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

// Package rule selects which label template applies to an item.
//
// Rules are stored as a flat, ordered list of [Entry] records. An entry with
// a non-empty template starts a new rule group; following entries with an
// empty template chain further conditions onto that group with AND
// semantics. [Decode] rebuilds the groups once, and [Set.Select] walks them
// in order: the first enabled group whose conditions all hold wins.
//
// Conditions are fail-closed. An empty value, a count that does not parse or
// an unknown condition label produces a condition that never matches, so a
// half-edited rule can never turn into a catch-all.
package rule
