// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

// Package label turns label templates into styled text for dropped-item
// name tags.
//
// A template mixes literal text, Minecraft-style ampersand codes and the
// placeholders {name} and {count}:
//
//	{name} &6&lx{count}
//
// [Parse] interprets the ampersand codes and accumulates them into a running
// [Style]. [FormatAutomatic] ignores codes entirely and styles the two
// placeholders from configured per-field styles instead. Both return a
// [Label]: an ordered sequence of [Run] values that a renderer draws left to
// right.
//
// # Intrinsic name styles
//
// Items can carry their own name formatting (a custom color, or a rarity
// above common). Unless the caller asks to override item colors, the
// {name} placeholder is rendered with the item's own style and ignores the
// style accumulated from the template.
//
// # Error Handling
//
// Nothing in this package fails. Unknown codes are kept as literal text and
// all functions are pure, so they are safe for concurrent use.
package label
