// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package label

// codePrefix introduces an inline style code.
const codePrefix = '&'

// Style is an immutable set of text attributes. The zero value is the
// neutral style: no color and no formatting.
type Style struct {
	Color         Color `json:"color"`
	Bold          bool  `json:"bold,omitempty"`
	Italic        bool  `json:"italic,omitempty"`
	Underline     bool  `json:"underline,omitempty"`
	Strikethrough bool  `json:"strikethrough,omitempty"`
	Obfuscated    bool  `json:"obfuscated,omitempty"`
}

// Neutral is the style with every attribute unset.
var Neutral Style

// IsNeutral reports whether no attribute is set.
func (s Style) IsNeutral() bool {
	return s == Neutral
}

// Reset returns the neutral style.
func (s Style) Reset() Style {
	return Neutral
}

// WithColor returns a copy of s with the color replaced.
func (s Style) WithColor(c Color) Style {
	s.Color = c
	return s
}

// Merge layers override on top of base. Attributes set in override win;
// unset attributes keep base's value. Merge(s, Neutral) == s.
func Merge(base, override Style) Style {
	out := base
	if override.Color.IsSet() {
		out.Color = override.Color
	}
	out.Bold = base.Bold || override.Bold
	out.Italic = base.Italic || override.Italic
	out.Underline = base.Underline || override.Underline
	out.Strikethrough = base.Strikethrough || override.Strikethrough
	out.Obfuscated = base.Obfuscated || override.Obfuscated
	return out
}

// codeToFormat maps format code characters to the attribute they turn on.
var codeToFormat = map[byte]Style{
	'k': {Obfuscated: true},
	'l': {Bold: true},
	'm': {Strikethrough: true},
	'n': {Underline: true},
	'o': {Italic: true},
}

// resetCode restores the neutral style.
const resetCode = 'r'

// ApplyCode returns the style that results from applying one inline code
// character to s. Color codes replace the color, format codes turn their
// attribute on and 'r' resets. The second result is false for characters
// that are not codes, in which case s is returned unchanged.
func ApplyCode(s Style, code byte) (Style, bool) {
	if c, ok := codeToColor[code]; ok {
		return s.WithColor(c), true
	}
	if f, ok := codeToFormat[code]; ok {
		return Merge(s, f), true
	}
	if code == resetCode {
		return s.Reset(), true
	}
	return s, false
}

// IsCode reports whether code is a recognized inline code character.
func IsCode(code byte) bool {
	_, ok := ApplyCode(Neutral, code)
	return ok
}
