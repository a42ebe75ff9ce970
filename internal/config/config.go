// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

// Package config loads namedloot settings files and compiles them into the
// immutable snapshot the labeler evaluates against.
package config

import (
	"github.com/samber/oops"

	"github.com/namedloot/namedloot/internal/labeler"
	"github.com/namedloot/namedloot/pkg/label"
	"github.com/namedloot/namedloot/pkg/rule"
)

// Config mirrors the settings file.
type Config struct {
	Version            string       `koanf:"version" json:"version,omitempty" jsonschema:"description=Settings format version (semver)"`
	Enabled            bool         `koanf:"enabled" json:"enabled,omitempty" jsonschema:"description=Show the default label when no rule matches"`
	ManualFormatting   bool         `koanf:"manual_formatting" json:"manual_formatting,omitempty" jsonschema:"description=Use ampersand markup for the default label"`
	OverrideItemColors bool         `koanf:"override_item_colors" json:"override_item_colors,omitempty" jsonschema:"description=Ignore items' own name colors"`
	ManualFormat       string       `koanf:"manual_format" json:"manual_format,omitempty"`
	AutomaticFormat    string       `koanf:"automatic_format" json:"automatic_format,omitempty"`
	NameStyle          StyleConfig  `koanf:"name_style" json:"name_style,omitempty"`
	CountStyle         StyleConfig  `koanf:"count_style" json:"count_style,omitempty"`
	RulesEnabled       bool         `koanf:"rules_enabled" json:"rules_enabled,omitempty"`
	Rules              []rule.Entry `koanf:"rules" json:"rules,omitempty"`
	Log                LogConfig    `koanf:"log" json:"log,omitempty"`
}

// StyleConfig is a per-field style for automatic formatting.
type StyleConfig struct {
	Color         string `koanf:"color" json:"color,omitempty" jsonschema:"description=Hex #RRGGBB or an ampersand code or a color name"`
	Bold          bool   `koanf:"bold" json:"bold,omitempty"`
	Italic        bool   `koanf:"italic" json:"italic,omitempty"`
	Underline     bool   `koanf:"underline" json:"underline,omitempty"`
	Strikethrough bool   `koanf:"strikethrough" json:"strikethrough,omitempty"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `koanf:"level" json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=text"`
}

// Style converts the file representation into a label style.
func (sc StyleConfig) Style() (label.Style, error) {
	c, ok := label.ParseColor(sc.Color)
	if !ok {
		return label.Style{}, oops.Code("CONFIG_INVALID").
			With("color", sc.Color).
			Hint("use #RRGGBB, an &x code or a color name such as gold").
			Errorf("invalid color %q", sc.Color)
	}
	return label.Style{
		Color:         c,
		Bold:          sc.Bold,
		Italic:        sc.Italic,
		Underline:     sc.Underline,
		Strikethrough: sc.Strikethrough,
	}, nil
}

// Settings compiles the configuration into a labeler snapshot. Rule
// problems do not fail compilation; they are returned as issues and the
// affected rules never match.
func (c *Config) Settings() (labeler.Settings, []rule.Issue, error) {
	nameStyle, err := c.NameStyle.Style()
	if err != nil {
		return labeler.Settings{}, nil, oops.With("field", "name_style").Wrap(err)
	}
	countStyle, err := c.CountStyle.Style()
	if err != nil {
		return labeler.Settings{}, nil, oops.With("field", "count_style").Wrap(err)
	}

	rules, issues := rule.Decode(c.Rules)

	return labeler.Settings{
		Enabled:             c.Enabled,
		UseManualFormatting: c.ManualFormatting,
		OverrideItemColors:  c.OverrideItemColors,
		ManualFormat:        c.ManualFormat,
		AutomaticFormat:     c.AutomaticFormat,
		NameStyle:           nameStyle,
		CountStyle:          countStyle,
		RulesEnabled:        c.RulesEnabled,
		Rules:               rules,
	}, issues, nil
}
