// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/namedloot/namedloot/pkg/rule"
)

// NewRulesCmd creates the rules subcommand.
func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the configured rule groups",
		Long: `List the rule groups decoded from the settings file, in the order
they are evaluated. The first enabled group whose conditions all hold
supplies the label template.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			return writeGroups(cmd.OutOrStdout(), s.settings.Rules)
		},
	}

	cmd.AddCommand(newExplainCmd())
	return cmd
}

func newExplainCmd() *cobra.Command {
	var q rule.Query

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show how each rule group evaluates for an item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			return writeExplain(cmd.OutOrStdout(), s.settings.Rules, q)
		},
	}

	cmd.Flags().StringVar(&q.Name, "name", "", "item display name")
	cmd.Flags().IntVar(&q.Count, "count", 1, "stack size")
	return cmd
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func writeGroups(w io.Writer, set rule.Set) error {
	if set.Len() == 0 {
		_, err := fmt.Fprintln(w, "no rules configured")
		return err
	}

	t := newTable("GROUP", "ENTRY", "STATE", "CONDITIONS", "FORMAT")
	for i, g := range set.Groups() {
		t.Row(strconv.Itoa(i), strconv.Itoa(g.Leader), groupState(g), conditionList(g.Conditions), strconv.Quote(g.Template))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeExplain(w io.Writer, set rule.Set, q rule.Query) error {
	groups := set.Groups()

	t := newTable("GROUP", "OUTCOME", "DETAIL")
	for _, tr := range set.Explain(q) {
		detail := ""
		switch {
		case tr.Selected:
			detail = "selected"
		case tr.Outcome == rule.OutcomeFailed && tr.FailedAt < len(groups[tr.Group].Conditions):
			detail = "failed at " + groups[tr.Group].Conditions[tr.FailedAt].String()
		case tr.Outcome == rule.OutcomeMatched:
			detail = "shadowed by an earlier group"
		}
		t.Row(strconv.Itoa(tr.Group), tr.Outcome.String(), detail)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	if m, ok := set.Select(q); ok {
		_, err := fmt.Fprintf(w, "result: group %d, format %q\n", m.Group, m.Template)
		return err
	}
	_, err := fmt.Fprintln(w, "result: no rule matched")
	return err
}

func groupState(g rule.Group) string {
	switch {
	case g.Orphan:
		return "orphan"
	case !g.Enabled:
		return "disabled"
	default:
		return "enabled"
	}
}

func conditionList(conds []rule.Condition) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " && ")
}
