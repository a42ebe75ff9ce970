// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package main

import (
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/namedloot/namedloot/internal/config"
	"github.com/namedloot/namedloot/internal/labeler"
	"github.com/namedloot/namedloot/internal/logging"
	"github.com/namedloot/namedloot/internal/xdg"
	"github.com/namedloot/namedloot/pkg/rule"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the namedloot CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namedloot",
		Short: "NamedLoot - labels for dropped items",
		Long: `NamedLoot renders the floating labels shown above dropped items.
Labels come from ampersand-coded templates, an automatic formatter, or
user rules that pick a template by item name and stack size.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "settings file path (default $XDG_CONFIG_HOME/namedloot/namedloot.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text or json)")
	pf.Bool("enabled", true, "show the default label when no rule matches")
	pf.Bool("manual-formatting", true, "use ampersand markup for the default label")
	pf.Bool("override-item-colors", false, "ignore items' own name colors")
	pf.String("manual-format", labeler.DefaultManualFormat, "default label template in manual mode")
	pf.String("automatic-format", labeler.DefaultAutomaticFormat, "default label template in automatic mode")
	pf.Bool("rules-enabled", true, "evaluate user rules")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewRulesCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}

// session is the configuration state shared by the subcommands.
type session struct {
	path     string
	settings labeler.Settings
	issues   []rule.Issue
	logger   *slog.Logger
}

// settingsPath returns --config, or the XDG default when it exists.
func settingsPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	xdg.Reload()
	path, err := xdg.FindSettings()
	if err != nil {
		return "", oops.Code("CONFIG_READ_FAILED").With("path", xdg.SettingsFile()).Wrapf(err, "locate settings")
	}
	return path, nil
}

// loadSession loads the settings file, applies flag overrides and installs
// the configured logger. Rule issues are logged and otherwise ignored.
func loadSession(cmd *cobra.Command) (*session, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := logging.SetDefault(logging.Options{
		Service: "namedloot",
		Version: version,
		Format:  cfg.Log.Format,
		Level:   cfg.Log.Level,
	}, cmd.ErrOrStderr())

	settings, issues, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	for _, issue := range issues {
		logger.Warn("rule entry ignored", "entry", issue.Entry, "problem", issue.Message)
	}

	return &session{path: path, settings: settings, issues: issues, logger: logger}, nil
}
