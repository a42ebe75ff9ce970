// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package label

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an optional 24-bit RGB color. The zero value means "no color".
type Color struct {
	rgb uint32
	set bool
}

// RGB returns a set color from a 0xRRGGBB value. Bits above 24 are dropped.
func RGB(rgb uint32) Color {
	return Color{rgb: rgb & 0xFFFFFF, set: true}
}

// NoColor is the unset color.
var NoColor Color

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool {
	return c.set
}

// Value returns the 0xRRGGBB value and whether the color is set.
func (c Color) Value() (uint32, bool) {
	return c.rgb, c.set
}

// Components splits the color into red, green and blue bytes.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c.rgb >> 16), uint8(c.rgb >> 8), uint8(c.rgb)
}

// String returns "#RRGGBB", or the empty string for an unset color.
func (c Color) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%06X", c.rgb)
}

// Fixed color table for the sixteen ampersand color codes.
var (
	Black       = RGB(0x000000)
	DarkBlue    = RGB(0x0000AA)
	DarkGreen   = RGB(0x00AA00)
	DarkAqua    = RGB(0x00AAAA)
	DarkRed     = RGB(0xAA0000)
	DarkPurple  = RGB(0xAA00AA)
	Gold        = RGB(0xFFAA00)
	Gray        = RGB(0xAAAAAA)
	DarkGray    = RGB(0x555555)
	Blue        = RGB(0x5555FF)
	Green       = RGB(0x55FF55)
	Aqua        = RGB(0x55FFFF)
	Red         = RGB(0xFF5555)
	LightPurple = RGB(0xFF55FF)
	Yellow      = RGB(0xFFFF55)
	White       = RGB(0xFFFFFF)
)

// codeToColor maps color code characters to their fixed RGB values.
var codeToColor = map[byte]Color{
	'0': Black,
	'1': DarkBlue,
	'2': DarkGreen,
	'3': DarkAqua,
	'4': DarkRed,
	'5': DarkPurple,
	'6': Gold,
	'7': Gray,
	'8': DarkGray,
	'9': Blue,
	'a': Green,
	'b': Aqua,
	'c': Red,
	'd': LightPurple,
	'e': Yellow,
	'f': White,
}

// colorNames maps the vanilla color names to the same table.
var colorNames = map[string]Color{
	"black":        Black,
	"dark_blue":    DarkBlue,
	"dark_green":   DarkGreen,
	"dark_aqua":    DarkAqua,
	"dark_red":     DarkRed,
	"dark_purple":  DarkPurple,
	"gold":         Gold,
	"gray":         Gray,
	"dark_gray":    DarkGray,
	"blue":         Blue,
	"green":        Green,
	"aqua":         Aqua,
	"red":          Red,
	"light_purple": LightPurple,
	"yellow":       Yellow,
	"white":        White,
}

// CodeColor returns the color for a color code character such as '6'.
func CodeColor(code byte) (Color, bool) {
	c, ok := codeToColor[code]
	return c, ok
}

// ParseColor parses a color written as "#RRGGBB", "RRGGBB", an ampersand
// code ("&6") or a vanilla color name ("gold"). The empty string parses to
// [NoColor].
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoColor, true
	}

	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, true
	}

	if len(s) == 2 && s[0] == codePrefix {
		return CodeColor(s[1])
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return NoColor, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return NoColor, false
	}
	return RGB(uint32(v)), true
}
