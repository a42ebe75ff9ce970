// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package label

import (
	"encoding/json"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel_AppendDoesNotShareRuns(t *testing.T) {
	base := NewLabel(Run{Text: "a"})
	left := base.Append(Run{Text: "b"})
	right := base.Append(Run{Text: "c"})

	assert.Equal(t, "a", base.Text())
	assert.Equal(t, "ab", left.Text())
	assert.Equal(t, "ac", right.Text())
}

func TestLabel_AppendDropsEmptyRuns(t *testing.T) {
	l := NewLabel(Run{Text: ""}, Run{Text: "x", Style: Style{Bold: true}}, Run{})

	assert.Equal(t, 1, l.Len())
	assert.False(t, l.IsEmpty())
	assert.True(t, NewLabel().IsEmpty())
}

func TestLabel_RunsIsACopy(t *testing.T) {
	l := NewLabel(Run{Text: "keep"})
	runs := l.Runs()
	runs[0].Text = "changed"

	assert.Equal(t, "keep", l.Text())
}

func TestLabel_RenderANSI(t *testing.T) {
	tests := []struct {
		name string
		runs []Run
		want string
	}{
		{
			name: "plain",
			runs: []Run{{Text: "plain"}},
			want: "plain",
		},
		{
			name: "gold bold",
			runs: []Run{{Text: "x64", Style: Style{Color: Gold, Bold: true}}},
			want: "\x1b[1;38;2;255;170;0mx64\x1b[0m",
		},
		{
			name: "all formats",
			runs: []Run{{Text: "z", Style: Style{Italic: true, Underline: true, Strikethrough: true, Obfuscated: true}}},
			want: "\x1b[3;4;9;5mz\x1b[0m",
		},
		{
			name: "mixed runs",
			runs: []Run{{Text: "a"}, {Text: "b", Style: Style{Color: Black}}},
			want: "a\x1b[38;2;0;0;0mb\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLabel(tt.runs...).RenderANSI())
		})
	}
}

func TestLabel_RenderProfiles(t *testing.T) {
	l := NewLabel(
		Run{Text: "Iron Ore", Style: Style{Color: Green}},
		Run{Text: " x"},
		Run{Text: "64", Style: Style{Color: Gold, Bold: true}},
	)

	assert.Equal(t, "Iron Ore x64", l.Render(termenv.Ascii))
	assert.Contains(t, l.Render(termenv.ANSI256), "\x1b[38;5;")
	assert.Equal(t, l.RenderANSI(), l.Render(termenv.TrueColor))
	assert.Contains(t, l.Render(termenv.ANSI), "\x1b[1;")
}

func TestRun_JSON(t *testing.T) {
	data, err := json.Marshal(Run{Text: "x64", Style: Style{Color: Gold, Bold: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"x64","style":{"color":"#FFAA00","bold":true}}`, string(data))

	var back Run
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Run{Text: "x64", Style: Style{Color: Gold, Bold: true}}, back)
}

func TestColor_UnmarshalTextRejectsGarbage(t *testing.T) {
	var c Color
	assert.Error(t, c.UnmarshalText([]byte("chartreuse")))
}

func TestRarity(t *testing.T) {
	tests := []struct {
		input string
		want  Rarity
		color Color
	}{
		{input: "", want: RarityCommon, color: White},
		{input: "common", want: RarityCommon, color: White},
		{input: "Uncommon", want: RarityUncommon, color: Yellow},
		{input: "rare", want: RarityRare, color: Aqua},
		{input: "EPIC", want: RarityEpic, color: LightPurple},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRarity(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.color, got.Color())
		})
	}

	_, ok := ParseRarity("legendary")
	assert.False(t, ok)
	assert.Equal(t, "rarity(9)", Rarity(9).String())
}

func TestItem_IntrinsicName(t *testing.T) {
	_, ok := Item{Name: "Dirt"}.IntrinsicName()
	assert.False(t, ok, "common item without color has no intrinsic style")

	run, ok := Item{Name: "Flag", Style: Style{Bold: true}, Rarity: RarityRare}.IntrinsicName()
	require.True(t, ok)
	assert.Equal(t, Run{Text: "Flag", Style: Style{Color: Aqua, Bold: true}}, run)

	run, ok = Item{Name: "Dye", Style: Style{Color: Red}, Rarity: RarityEpic}.IntrinsicName()
	require.True(t, ok)
	assert.Equal(t, Style{Color: Red}, run.Style, "explicit color beats rarity color")
}
