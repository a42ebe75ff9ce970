// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package rule

// Entry is one record of the flat rule list as persisted by the rule
// editor. Only the first entry of a group carries a template; chained
// entries leave it empty.
type Entry struct {
	Condition string `json:"condition" yaml:"condition" koanf:"condition"`
	Value     string `json:"value" yaml:"value" koanf:"value" jsonschema:"oneof_type=string;integer"`
	Template  string `json:"format,omitempty" yaml:"format,omitempty" koanf:"format"`
	Enabled   bool   `json:"enabled" yaml:"enabled" koanf:"enabled"`
}

// Group is one or more AND-chained conditions sharing a template.
type Group struct {
	Conditions []Condition
	Enabled    bool
	Template   string

	// Leader is the index of the group's first entry in the flat list.
	Leader int

	// Orphan marks chained entries that appear before any group leader.
	// Orphan groups are never selected.
	Orphan bool
}

// Matches reports whether every condition holds, evaluated left to right
// and stopping at the first failure. A group without conditions never
// matches. Enabled is not consulted.
func (g Group) Matches(q Query) bool {
	_, ok := g.firstFailure(q)
	return ok
}

// firstFailure returns the index of the first failing condition, or
// (-1, true) when all conditions hold.
func (g Group) firstFailure(q Query) (int, bool) {
	if len(g.Conditions) == 0 {
		return 0, false
	}
	for i, c := range g.Conditions {
		if !c.Matches(q) {
			return i, false
		}
	}
	return -1, true
}

// Selectable reports whether the group takes part in selection.
func (g Group) Selectable() bool {
	return g.Enabled && !g.Orphan
}
