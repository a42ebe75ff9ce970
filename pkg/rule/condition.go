// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

// Kind identifies what a condition tests.
type Kind int

// Condition kinds.
const (
	KindUnknown Kind = iota
	KindNameContains
	KindCountLessThan
	KindCountGreaterThan
	KindCountEquals
	KindNameMatches
)

// Stored labels for each kind, as written by the rule editor.
const (
	LabelContains     = "Contains"
	LabelCountLess    = "Count <"
	LabelCountGreater = "Count >"
	LabelCountEquals  = "Count ="
	LabelMatches      = "Matches"
)

var kindLabels = map[Kind]string{
	KindNameContains:     LabelContains,
	KindCountLessThan:    LabelCountLess,
	KindCountGreaterThan: LabelCountGreater,
	KindCountEquals:      LabelCountEquals,
	KindNameMatches:      LabelMatches,
}

// Labels returns every stored condition label in kind order.
func Labels() []string {
	return []string{LabelContains, LabelCountLess, LabelCountGreater, LabelCountEquals, LabelMatches}
}

// String returns the stored label of the kind.
func (k Kind) String() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a stored label to its kind.
func ParseKind(label string) (Kind, bool) {
	for k, l := range kindLabels {
		if l == label {
			return k, true
		}
	}
	return KindUnknown, false
}

// Query is the matching input for one item.
type Query struct {
	Name  string
	Count int
}

// Condition is a single decoded test against a [Query]. Its zero value never
// matches.
type Condition struct {
	kind  Kind
	label string
	value string

	valid   bool
	needle  string
	number  int
	pattern glob.Glob
}

// NewCondition decodes a stored value for the given kind. Invalid input
// yields a condition that never matches; [Condition.Problem] explains why.
func NewCondition(kind Kind, value string) Condition {
	c := Condition{kind: kind, value: value}
	if value == "" {
		return c
	}

	switch kind {
	case KindNameContains:
		c.needle = strings.ToLower(value)
		c.valid = true

	case KindCountLessThan, KindCountGreaterThan, KindCountEquals:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return c
		}
		c.number = n
		c.valid = true

	case KindNameMatches:
		g, err := glob.Compile(strings.ToLower(value))
		if err != nil {
			return c
		}
		c.pattern = g
		c.valid = true
	}

	return c
}

// decodeCondition decodes a stored label and value. An unknown label yields
// a condition that never matches but still carries the label as written.
func decodeCondition(label, value string) (Condition, bool) {
	kind, ok := ParseKind(label)
	c := NewCondition(kind, value)
	c.label = label
	return c, ok
}

// NameContains tests for a case-insensitive substring of the item name.
func NameContains(value string) Condition { return NewCondition(KindNameContains, value) }

// NameMatches tests the item name against a case-insensitive glob pattern.
func NameMatches(pattern string) Condition { return NewCondition(KindNameMatches, pattern) }

// CountLessThan tests count < n.
func CountLessThan(n string) Condition { return NewCondition(KindCountLessThan, n) }

// CountGreaterThan tests count > n.
func CountGreaterThan(n string) Condition { return NewCondition(KindCountGreaterThan, n) }

// CountEquals tests count == n.
func CountEquals(n string) Condition { return NewCondition(KindCountEquals, n) }

// Kind returns the condition kind.
func (c Condition) Kind() Kind { return c.kind }

// Label returns the stored condition label. Conditions decoded from an
// unknown label keep that label as written.
func (c Condition) Label() string {
	if c.label != "" || c.kind == KindUnknown {
		return c.label
	}
	return c.kind.String()
}

// Value returns the stored value as written.
func (c Condition) Value() string { return c.value }

// Valid reports whether the condition can ever match.
func (c Condition) Valid() bool { return c.valid }

// Problem describes why the condition is invalid, or returns "".
func (c Condition) Problem() string {
	switch {
	case c.valid:
		return ""
	case c.kind == KindUnknown:
		return "unknown condition"
	case c.value == "":
		return "empty value"
	case c.kind == KindNameMatches:
		return fmt.Sprintf("invalid pattern %q", c.value)
	default:
		return fmt.Sprintf("value %q is not an integer", c.value)
	}
}

// Matches evaluates the condition. Invalid conditions never match.
func (c Condition) Matches(q Query) bool {
	if !c.valid {
		return false
	}

	switch c.kind {
	case KindNameContains:
		return strings.Contains(strings.ToLower(q.Name), c.needle)
	case KindNameMatches:
		return c.pattern.Match(strings.ToLower(q.Name))
	case KindCountLessThan:
		return q.Count < c.number
	case KindCountGreaterThan:
		return q.Count > c.number
	case KindCountEquals:
		return q.Count == c.number
	default:
		return false
	}
}

// String renders the condition as "<label> <value>".
func (c Condition) String() string {
	return fmt.Sprintf("%s %q", c.Label(), c.value)
}
