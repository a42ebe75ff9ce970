// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package main

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a settings file without rendering anything",
		Long: `Validates a settings file against the schema, checks its format
version and decodes its rules. Rule problems that would silently disable a
rule at render time are reported as failures here.
Exits with code 0 on success, non-zero on failure.

The file defaults to --config, then to namedloot.yaml in the XDG config
directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				configFile = args[0]
			}
			return runValidate(cmd)
		},
	}
}

func runValidate(cmd *cobra.Command) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if path == "" {
		return oops.Code("VALIDATE_NO_FILE").
			Hint("pass a file or --config").
			Errorf("no settings file to validate")
	}

	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, issue := range s.issues {
		fmt.Fprintln(out, issue.String())
	}
	if len(s.issues) > 0 {
		return oops.Code("VALIDATE_RULE_ISSUES").
			With("path", s.path).
			With("issues", len(s.issues)).
			Errorf("validation failed: %d rule issues", len(s.issues))
	}

	fmt.Fprintf(out, "%s: ok (%d rule groups)\n", s.path, s.settings.Rules.Len())
	return nil
}
