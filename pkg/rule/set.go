// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package rule

import "fmt"

// Issue describes a problem found while decoding the flat rule list. Issues
// never stop decoding; the affected condition or group simply never matches.
type Issue struct {
	Entry   int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("rule entry %d: %s", i.Entry, i.Message)
}

// Set is a decoded, immutable rule list. The zero value holds no groups and
// never matches.
type Set struct {
	groups []Group
}

// Match is the result of a successful selection.
type Match struct {
	Template string

	// Group is the index of the matched group within the set.
	Group int

	// Leader is the flat-list index of the group's first entry.
	Leader int
}

// Decode rebuilds rule groups from the flat list. A group starts at every
// entry with a non-empty template and absorbs the empty-template entries
// that follow it. Chained entries at the very start of the list form an
// orphan group that is never selected.
func Decode(entries []Entry) (Set, []Issue) {
	var groups []Group
	var issues []Issue

	for i, e := range entries {
		if e.Template != "" || len(groups) == 0 {
			g := Group{
				Enabled:  e.Enabled,
				Template: e.Template,
				Leader:   i,
				Orphan:   e.Template == "",
			}
			if g.Orphan {
				issues = append(issues, Issue{Entry: i, Message: "chained condition has no preceding rule; it will never match"})
			}
			groups = append(groups, g)
		}

		c, ok := decodeCondition(e.Condition, e.Value)
		if !ok {
			issues = append(issues, Issue{Entry: i, Message: fmt.Sprintf("unknown condition %q", e.Condition)})
		}
		if ok && !c.Valid() {
			issues = append(issues, Issue{Entry: i, Message: c.Problem()})
		}

		last := &groups[len(groups)-1]
		last.Conditions = append(last.Conditions, c)
	}

	return Set{groups: groups}, issues
}

// NewSet builds a set from explicit groups, in priority order.
func NewSet(groups ...Group) Set {
	out := make([]Group, len(groups))
	for i, g := range groups {
		g.Conditions = append([]Condition(nil), g.Conditions...)
		out[i] = g
	}
	return Set{groups: out}
}

// Groups returns a copy of the decoded groups.
func (s Set) Groups() []Group {
	out := make([]Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// Len returns the number of groups.
func (s Set) Len() int {
	return len(s.groups)
}

// Select returns the first selectable group whose conditions all match.
// The result depends only on the set and the query.
func (s Set) Select(q Query) (Match, bool) {
	for i, g := range s.groups {
		if !g.Selectable() {
			continue
		}
		if g.Matches(q) {
			return Match{Template: g.Template, Group: i, Leader: g.Leader}, true
		}
	}
	return Match{}, false
}

// Select decodes entries and selects in one step. Callers evaluating many
// items should decode once and reuse the [Set].
func Select(entries []Entry, q Query) (Match, bool) {
	s, _ := Decode(entries)
	return s.Select(q)
}

// Encode writes groups back to the flat list encoding. A group whose
// template is empty is written as chained entries and will fold into the
// preceding group when decoded again. Conditions keep their stored labels,
// including unknown ones, so a decode and encode cycle loses nothing.
func Encode(groups []Group) []Entry {
	var entries []Entry
	for _, g := range groups {
		for i, c := range g.Conditions {
			e := Entry{
				Condition: c.Label(),
				Value:     c.Value(),
				Enabled:   g.Enabled,
			}
			if i == 0 {
				e.Template = g.Template
			}
			entries = append(entries, e)
		}
	}
	return entries
}
