// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package label

import (
	"strconv"
	"strings"
)

// FormatAutomatic builds a label without interpreting ampersand codes.
// Literal text is unstyled, {name} uses nameStyle and {count} uses
// countStyle. When overrideItemColors is false, an item with an intrinsic
// style keeps its own name formatting instead of nameStyle.
func FormatAutomatic(template string, item Item, overrideItemColors bool, nameStyle, countStyle Style) Label {
	var l Label
	count := strconv.Itoa(item.Count)

	nameRun := Run{Text: item.Name, Style: nameStyle}
	if !overrideItemColors {
		if run, ok := item.IntrinsicName(); ok {
			nameRun = run
		}
	}

	rest := template
	for rest != "" {
		nameIdx := strings.Index(rest, PlaceholderName)
		countIdx := strings.Index(rest, PlaceholderCount)

		switch {
		case nameIdx == -1 && countIdx == -1:
			l = l.Append(Run{Text: rest})
			rest = ""

		case nameIdx != -1 && (countIdx == -1 || nameIdx < countIdx):
			l = l.Append(Run{Text: rest[:nameIdx]})
			l = l.Append(nameRun)
			rest = rest[nameIdx+len(PlaceholderName):]

		default:
			l = l.Append(Run{Text: rest[:countIdx]})
			l = l.Append(Run{Text: count, Style: countStyle})
			rest = rest[countIdx+len(PlaceholderCount):]
		}
	}

	return l
}
