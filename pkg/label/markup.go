// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package label

import (
	"strconv"
	"strings"
)

// Template placeholders. Matching is case-sensitive with no escaping.
const (
	PlaceholderName  = "{name}"
	PlaceholderCount = "{count}"
)

// markupParser holds the state of a single Parse call.
type markupParser struct {
	item     Item
	override bool

	style   Style
	pending strings.Builder
	label   Label
}

// Parse converts a template with ampersand codes into a label.
//
// Supported codes:
//   - Colors: &0-&9, &a-&f (the fixed sixteen-color table)
//   - Format: &l (bold), &o (italic), &n (underline), &m (strikethrough),
//     &k (obfuscated)
//   - Reset: &r
//
// Codes accumulate onto a running style until &r. An ampersand followed by
// anything other than a code is literal text together with that character,
// so "&&6" and "&{name}" are printed as written. A trailing ampersand is
// literal too.
//
// {count} is written with the running style and joins the surrounding
// literal run. {name} always forms its own run: it uses the running style,
// unless overrideItemColors is false and the item has an intrinsic style,
// in which case the item's own formatting wins. Neither placeholder changes
// the running style.
func Parse(template string, item Item, overrideItemColors bool) Label {
	p := &markupParser{item: item, override: overrideItemColors}
	count := strconv.Itoa(item.Count)

	i := 0
	for i < len(template) {
		switch {
		case template[i] == codePrefix && i+1 < len(template):
			next, ok := ApplyCode(p.style, template[i+1])
			if !ok {
				// Not a code: both characters are literal text.
				p.pending.WriteString(template[i : i+2])
				i += 2
				continue
			}
			p.flush()
			p.style = next
			i += 2

		case strings.HasPrefix(template[i:], PlaceholderName):
			p.flush()
			p.emitName()
			i += len(PlaceholderName)

		case strings.HasPrefix(template[i:], PlaceholderCount):
			p.pending.WriteString(count)
			i += len(PlaceholderCount)

		default:
			p.pending.WriteByte(template[i])
			i++
		}
	}

	p.flush()
	return p.label
}

// flush emits the pending literal text with the running style.
func (p *markupParser) flush() {
	if p.pending.Len() == 0 {
		return
	}
	p.label = p.label.Append(Run{Text: p.pending.String(), Style: p.style})
	p.pending.Reset()
}

// emitName writes the {name} run.
func (p *markupParser) emitName() {
	if !p.override {
		if run, ok := p.item.IntrinsicName(); ok {
			p.label = p.label.Append(run)
			return
		}
	}
	p.label = p.label.Append(Run{Text: p.item.Name, Style: p.style})
}
