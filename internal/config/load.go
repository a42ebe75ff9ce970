// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package config

import (
	_ "embed"
	"errors"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// flagKeys maps command-line flag names to the settings keys they override.
var flagKeys = map[string]string{
	"enabled":              "enabled",
	"manual-formatting":    "manual_formatting",
	"override-item-colors": "override_item_colors",
	"manual-format":        "manual_format",
	"automatic-format":     "automatic_format",
	"rules-enabled":        "rules_enabled",
	"log-level":            "log.level",
	"log-format":           "log.format",
}

// FlagKey returns the settings key a flag overrides, or "" when the flag
// is not a settings override.
func FlagKey(flag string) string {
	return flagKeys[flag]
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }

func (r *rawBytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration from the built-in defaults, then the
// settings file at path (skipped when path is empty), then any changed
// override flags. The file is schema-checked before it is merged. Files
// ending in .toml are read as TOML, everything else as YAML.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultsYAML}, yaml.Parser()); err != nil {
		return nil, oops.Code("CONFIG_DEFAULTS_FAILED").Wrapf(err, "load defaults")
	}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
		if err != nil {
			return nil, oops.Code("CONFIG_READ_FAILED").With("path", path).Wrapf(err, "read settings")
		}
		format := formatFor(path)
		doc, err := format.decode(data)
		if err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("path", path).With("format", format.name).Wrapf(err, "parse settings")
		}
		if err := ValidateDocument(doc); err != nil {
			return nil, oops.With("path", path).Wrap(err)
		}
		if err := k.Load(file.Provider(path), format.parser); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("path", path).Wrapf(err, "parse settings")
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key := FlagKey(f.Name)
			if key == "" {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_INVALID").Wrapf(err, "apply flag overrides")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, oops.Code("CONFIG_INVALID").Wrapf(err, "decode settings")
	}

	if err := checkVersion(cfg.Version); err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		panic("config: built-in defaults are invalid: " + err.Error())
	}
	return cfg
}
