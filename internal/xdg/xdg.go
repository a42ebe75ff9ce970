// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

// Package xdg locates namedloot's files under the XDG Base Directory layout.
package xdg

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	basedir "github.com/adrg/xdg"
)

const appName = "namedloot"

// SettingsFileName is the settings file looked up in ConfigDir.
const SettingsFileName = "namedloot.yaml"

// Reload re-reads the XDG environment variables.
func Reload() {
	basedir.Reload()
}

// ConfigDir returns the config directory for namedloot.
func ConfigDir() string {
	return filepath.Join(basedir.ConfigHome, appName)
}

// SettingsFile returns the default settings path.
func SettingsFile() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// FindSettings returns the default settings path when the file exists,
// or "" when it does not.
func FindSettings() (string, error) {
	path := SettingsFile()
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	case err != nil:
		return "", err
	case info.IsDir():
		return "", nil
	}
	return path, nil
}
