// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

// Package labeler decides which label, if any, an item gets.
//
// It ties the rule engine to the two formatters: a matching rule group's
// template is rendered with the markup parser; otherwise the global
// template is rendered in manual or automatic mode, or no label is produced
// when labels are globally disabled.
package labeler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/namedloot/namedloot/pkg/label"
	"github.com/namedloot/namedloot/pkg/rule"
)

// Default templates.
const (
	DefaultManualFormat    = "{name} &6&lx{count}"
	DefaultAutomaticFormat = "{name} x{count}"
)

// Source says which path produced a label.
type Source int

// Label sources.
const (
	SourceNone Source = iota
	SourceRule
	SourceManual
	SourceAutomatic
)

func (s Source) String() string {
	switch s {
	case SourceRule:
		return "rule"
	case SourceManual:
		return "manual"
	case SourceAutomatic:
		return "automatic"
	default:
		return "none"
	}
}

// Settings is the immutable configuration snapshot the labeler evaluates
// against.
type Settings struct {
	// Enabled turns the global fallback label on. Matching rules still
	// produce labels when it is off.
	Enabled bool

	// UseManualFormatting selects the markup parser for the fallback label
	// instead of the automatic formatter.
	UseManualFormatting bool

	// OverrideItemColors ignores items' intrinsic name styles.
	OverrideItemColors bool

	ManualFormat    string
	AutomaticFormat string

	// NameStyle and CountStyle style the placeholders in automatic mode.
	NameStyle  label.Style
	CountStyle label.Style

	// RulesEnabled turns rule matching on.
	RulesEnabled bool
	Rules        rule.Set
}

// DefaultSettings returns the out-of-the-box configuration: labels on,
// manual formatting, white name and count, no rules.
func DefaultSettings() Settings {
	return Settings{
		Enabled:             true,
		UseManualFormatting: true,
		ManualFormat:        DefaultManualFormat,
		AutomaticFormat:     DefaultAutomaticFormat,
		NameStyle:           label.Style{Color: label.White},
		CountStyle:          label.Style{Color: label.White},
		RulesEnabled:        true,
	}
}

// Result is the outcome of labeling one item.
type Result struct {
	Label  label.Label
	Source Source

	// Match is set when Source is SourceRule.
	Match rule.Match
}

// Labeler applies a settings snapshot to items. It is safe for concurrent
// use; reloading configuration means building a new Labeler.
type Labeler struct {
	settings   Settings
	selections *prometheus.CounterVec
}

// New creates a labeler over a settings snapshot.
func New(settings Settings, opts ...Option) *Labeler {
	l := &Labeler{settings: settings, selections: Selections}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Settings returns the snapshot the labeler was built with.
func (l *Labeler) Settings() Settings {
	return l.settings
}

// Label produces the label for item. The second result is false when the
// item gets no label at all.
func (l *Labeler) Label(item label.Item) (Result, bool) {
	res, ok := l.evaluate(item)
	l.recordSelection(res.Source)
	return res, ok
}

func (l *Labeler) evaluate(item label.Item) (Result, bool) {
	s := l.settings

	if s.RulesEnabled {
		q := rule.Query{Name: item.Name, Count: item.Count}
		if m, ok := s.Rules.Select(q); ok {
			return Result{
				Label:  label.Parse(m.Template, item, s.OverrideItemColors),
				Source: SourceRule,
				Match:  m,
			}, true
		}
	}

	if !s.Enabled {
		return Result{Source: SourceNone}, false
	}

	if s.UseManualFormatting {
		return Result{
			Label:  label.Parse(s.ManualFormat, item, s.OverrideItemColors),
			Source: SourceManual,
		}, true
	}

	return Result{
		Label:  label.FormatAutomatic(s.AutomaticFormat, item, s.OverrideItemColors, s.NameStyle, s.CountStyle),
		Source: SourceAutomatic,
	}, true
}
