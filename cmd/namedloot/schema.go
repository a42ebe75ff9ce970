// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/namedloot/namedloot/internal/config"
)

// NewSchemaCmd creates the schema subcommand.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for settings files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
}
