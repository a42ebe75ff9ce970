// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namedloot/namedloot/pkg/rule"
)

func oreRules() []rule.Entry {
	return []rule.Entry{
		{Condition: rule.LabelContains, Value: "ore", Template: "&a{name} x{count}", Enabled: true},
		{Condition: rule.LabelCountGreater, Value: "10", Enabled: true},
	}
}

func TestDecode_BuildsGroups(t *testing.T) {
	entries := []rule.Entry{
		{Condition: rule.LabelContains, Value: "ore", Template: "A", Enabled: true},
		{Condition: rule.LabelCountGreater, Value: "10"},
		{Condition: rule.LabelCountLess, Value: "50"},
		{Condition: rule.LabelCountEquals, Value: "1", Template: "B"},
		{Condition: rule.LabelContains, Value: "sword", Template: "C", Enabled: true},
	}

	set, issues := rule.Decode(entries)

	assert.Empty(t, issues)
	groups := set.Groups()
	require.Len(t, groups, 3)

	assert.Equal(t, "A", groups[0].Template)
	assert.Equal(t, 0, groups[0].Leader)
	assert.True(t, groups[0].Enabled)
	assert.Len(t, groups[0].Conditions, 3)

	assert.Equal(t, "B", groups[1].Template)
	assert.Equal(t, 3, groups[1].Leader)
	assert.False(t, groups[1].Enabled)
	assert.Len(t, groups[1].Conditions, 1)

	assert.Equal(t, "C", groups[2].Template)
	assert.Equal(t, 4, groups[2].Leader)
}

func TestDecode_EmptyList(t *testing.T) {
	set, issues := rule.Decode(nil)

	assert.Empty(t, issues)
	assert.Equal(t, 0, set.Len())
	_, ok := set.Select(rule.Query{Name: "x", Count: 1})
	assert.False(t, ok)
}

func TestDecode_OrphanLeadingEntries(t *testing.T) {
	entries := []rule.Entry{
		{Condition: rule.LabelContains, Value: "a", Enabled: true},
		{Condition: rule.LabelContains, Value: "b", Enabled: true},
		{Condition: rule.LabelContains, Value: "a", Template: "real", Enabled: true},
	}

	set, issues := rule.Decode(entries)

	require.Len(t, issues, 1)
	assert.Equal(t, 0, issues[0].Entry)
	assert.Contains(t, issues[0].String(), "rule entry 0")

	groups := set.Groups()
	require.Len(t, groups, 2)
	assert.True(t, groups[0].Orphan)
	assert.Len(t, groups[0].Conditions, 2)
	assert.False(t, groups[0].Selectable())

	m, ok := set.Select(rule.Query{Name: "ab", Count: 1})
	require.True(t, ok)
	assert.Equal(t, "real", m.Template)
	assert.Equal(t, 1, m.Group)
	assert.Equal(t, 2, m.Leader)
}

func TestDecode_ReportsBadEntries(t *testing.T) {
	entries := []rule.Entry{
		{Condition: "Starts with", Value: "x", Template: "A", Enabled: true},
		{Condition: rule.LabelCountEquals, Value: "", Template: "B", Enabled: true},
		{Condition: rule.LabelCountLess, Value: "many", Template: "C", Enabled: true},
	}

	set, issues := rule.Decode(entries)

	require.Len(t, issues, 3)
	assert.Equal(t, `unknown condition "Starts with"`, issues[0].Message)
	assert.Equal(t, "empty value", issues[1].Message)
	assert.Equal(t, `value "many" is not an integer`, issues[2].Message)
	assert.Equal(t, 3, set.Len())

	_, ok := set.Select(rule.Query{Name: "x", Count: 0})
	assert.False(t, ok, "invalid conditions are fail-closed")
}

func TestSelect_GroupAndSemantics(t *testing.T) {
	set, _ := rule.Decode(oreRules())

	m, ok := set.Select(rule.Query{Name: "Iron Ore", Count: 12})
	require.True(t, ok)
	assert.Equal(t, "&a{name} x{count}", m.Template)

	_, ok = set.Select(rule.Query{Name: "Iron Ore", Count: 5})
	assert.False(t, ok)

	_, ok = set.Select(rule.Query{Name: "Iron Ingot", Count: 12})
	assert.False(t, ok)
}

func TestSelect_FirstMatchWins(t *testing.T) {
	entries := []rule.Entry{
		{Condition: rule.LabelContains, Value: "a", Template: "broad", Enabled: true},
		{Condition: rule.LabelContains, Value: "diamond", Template: "specific", Enabled: true},
	}

	m, ok := rule.Select(entries, rule.Query{Name: "Diamond", Count: 1})

	require.True(t, ok)
	assert.Equal(t, "broad", m.Template)
	assert.Equal(t, 0, m.Group)
}

func TestSelect_DisabledGroupSkipped(t *testing.T) {
	entries := []rule.Entry{
		{Condition: rule.LabelContains, Value: "ore", Template: "disabled", Enabled: false},
		{Condition: rule.LabelCountGreater, Value: "0", Enabled: true},
		{Condition: rule.LabelContains, Value: "ore", Template: "enabled", Enabled: true},
	}

	m, ok := rule.Select(entries, rule.Query{Name: "Gold Ore", Count: 3})

	require.True(t, ok)
	assert.Equal(t, "enabled", m.Template)
	assert.Equal(t, 1, m.Group)
	assert.Equal(t, 2, m.Leader)
}

func TestSelect_DisabledGroupFallsThrough(t *testing.T) {
	entries := []rule.Entry{
		{Condition: rule.LabelContains, Value: "ore", Template: "disabled", Enabled: false},
	}

	_, ok := rule.Select(entries, rule.Query{Name: "Gold Ore", Count: 3})
	assert.False(t, ok)
}

func TestSelect_Deterministic(t *testing.T) {
	set, _ := rule.Decode(oreRules())
	q := rule.Query{Name: "Copper Ore", Count: 40}

	first, ok := set.Select(q)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := set.Select(q)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestGroup_NoConditionsNeverMatches(t *testing.T) {
	set := rule.NewSet(rule.Group{Enabled: true, Template: "x"})
	_, ok := set.Select(rule.Query{Name: "x", Count: 1})
	assert.False(t, ok)
}

func TestNewSet_CopiesConditions(t *testing.T) {
	conds := []rule.Condition{rule.NameContains("ore")}
	set := rule.NewSet(rule.Group{Conditions: conds, Enabled: true, Template: "x"})
	conds[0] = rule.NameContains("nothing-like-this")

	_, ok := set.Select(rule.Query{Name: "Iron Ore", Count: 1})
	assert.True(t, ok)
}

func TestEncode_RoundTrip(t *testing.T) {
	entries := []rule.Entry{
		{Condition: rule.LabelContains, Value: "ore", Template: "A", Enabled: true},
		{Condition: rule.LabelCountGreater, Value: "10", Enabled: true},
		{Condition: rule.LabelMatches, Value: "*sword", Template: "B", Enabled: false},
	}

	set, issues := rule.Decode(entries)
	require.Empty(t, issues)

	assert.Equal(t, entries, rule.Encode(set.Groups()))
}

func TestEncode_KeepsUnknownConditionLabels(t *testing.T) {
	entries := []rule.Entry{
		{Condition: "Starts with", Value: "iron", Template: "A", Enabled: true},
		{Condition: rule.LabelCountGreater, Value: "10", Enabled: true},
		{Condition: "", Value: "x", Template: "B", Enabled: true},
	}

	set, issues := rule.Decode(entries)
	require.Len(t, issues, 2)

	groups := set.Groups()
	assert.Equal(t, "Starts with", groups[0].Conditions[0].Label())
	assert.Equal(t, `Starts with "iron"`, groups[0].Conditions[0].String())
	assert.False(t, groups[0].Conditions[0].Valid())

	assert.Equal(t, entries, rule.Encode(groups))
}
