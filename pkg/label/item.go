// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package label

import (
	"fmt"
	"strings"
)

// Rarity is an item's rarity tier. The zero value is [RarityCommon].
type Rarity int

// Rarity tiers, lowest first.
const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
)

var rarityNames = [...]string{"common", "uncommon", "rare", "epic"}

// String returns the lowercase tier name.
func (r Rarity) String() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Color returns the name color the tier gives an item.
func (r Rarity) Color() Color {
	switch r {
	case RarityUncommon:
		return Yellow
	case RarityRare:
		return Aqua
	case RarityEpic:
		return LightPurple
	default:
		return White
	}
}

// ParseRarity parses a tier name case-insensitively. The empty string is
// common.
func ParseRarity(s string) (Rarity, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RarityCommon, true
	}
	for i, name := range rarityNames {
		if s == name {
			return Rarity(i), true
		}
	}
	return RarityCommon, false
}

// Item is the formatting input for one dropped item stack.
type Item struct {
	// Name is the display name, without formatting.
	Name string

	// Count is the stack size.
	Count int

	// Style is the item's own name formatting, as supplied by the game.
	Style Style

	// Rarity is the item's rarity tier.
	Rarity Rarity
}

// HasIntrinsicStyle reports whether the item brings its own name
// formatting: an explicit color or a rarity above common.
func (it Item) HasIntrinsicStyle() bool {
	return it.Style.Color.IsSet() || it.Rarity != RarityCommon
}

// IntrinsicName returns the item's name formatted with its own style. The
// rarity color fills in when the item style has no color. The second result
// is false when the item has no intrinsic style.
func (it Item) IntrinsicName() (Run, bool) {
	if !it.HasIntrinsicStyle() {
		return Run{}, false
	}
	style := it.Style
	if !style.Color.IsSet() {
		style = style.WithColor(it.Rarity.Color())
	}
	return Run{Text: it.Name, Style: style}, true
}
