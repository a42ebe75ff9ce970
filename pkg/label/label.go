// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package label

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/samber/oops"
)

// Run is a span of text drawn with a single style.
type Run struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Label is an ordered sequence of runs. Runs are never merged once added;
// renderers consume them independently, left to right.
type Label struct {
	runs []Run
}

// NewLabel builds a label from runs in order.
func NewLabel(runs ...Run) Label {
	var l Label
	for _, r := range runs {
		l = l.Append(r)
	}
	return l
}

// Append returns a new label with r added at the end. Runs with empty text
// are dropped.
func (l Label) Append(r Run) Label {
	if r.Text == "" {
		return l
	}
	runs := make([]Run, len(l.runs), len(l.runs)+1)
	copy(runs, l.runs)
	return Label{runs: append(runs, r)}
}

// Runs returns a copy of the label's runs.
func (l Label) Runs() []Run {
	out := make([]Run, len(l.runs))
	copy(out, l.runs)
	return out
}

// Len returns the number of runs.
func (l Label) Len() int {
	return len(l.runs)
}

// IsEmpty reports whether the label has no runs.
func (l Label) IsEmpty() bool {
	return len(l.runs) == 0
}

// Text concatenates the text of every run without styling.
func (l Label) Text() string {
	var buf strings.Builder
	for _, r := range l.runs {
		buf.WriteString(r.Text)
	}
	return buf.String()
}

// RenderANSI renders the label with 24-bit ANSI escape codes for terminal
// previews.
func (l Label) RenderANSI() string {
	return l.Render(termenv.TrueColor)
}

// Render renders the label for a terminal color profile. Colors are
// downsampled to the profile; the Ascii profile yields plain text.
func (l Label) Render(p termenv.Profile) string {
	var buf strings.Builder
	for _, r := range l.runs {
		buf.WriteString(renderRun(p, r))
	}
	return buf.String()
}

// renderRun renders a single run. Obfuscated text has no terminal
// equivalent and is shown blinking.
func renderRun(p termenv.Profile, r Run) string {
	if r.Style.IsNeutral() {
		return r.Text
	}

	out := p.String(r.Text)
	if r.Style.Bold {
		out = out.Bold()
	}
	if r.Style.Italic {
		out = out.Italic()
	}
	if r.Style.Underline {
		out = out.Underline()
	}
	if r.Style.Strikethrough {
		out = out.CrossOut()
	}
	if r.Style.Obfuscated {
		out = out.Blink()
	}
	if r.Style.Color.IsSet() {
		out = out.Foreground(p.Color(r.Style.Color.String()))
	}
	return out.String()
}

// MarshalText encodes the color as "#RRGGBB", or empty when unset.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts any form understood by [ParseColor].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return oops.Code("LABEL_INVALID_COLOR").With("color", string(text)).Errorf("invalid color %q", string(text))
	}
	*c = parsed
	return nil
}
