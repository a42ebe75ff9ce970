// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// fileFormat pairs the koanf parser for a settings file with a decoder
// producing the generic document the schema validates.
type fileFormat struct {
	name   string
	parser koanf.Parser
	decode func([]byte) (any, error)
}

var (
	yamlFormat = fileFormat{
		name:   "yaml",
		parser: yaml.Parser(),
		decode: func(data []byte) (any, error) {
			var doc any
			err := yamlv3.Unmarshal(data, &doc)
			return doc, err
		},
	}
	tomlFormat = fileFormat{
		name:   "toml",
		parser: tomlParser{},
		decode: func(data []byte) (any, error) {
			var doc map[string]any
			err := toml.Unmarshal(data, &doc)
			return doc, err
		},
	}
)

// formatFor picks the settings format from the file extension. Anything
// other than .toml is read as YAML.
func formatFor(path string) fileFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlFormat
	}
	return yamlFormat
}

// tomlParser adapts go-toml to koanf.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (tomlParser) Marshal(m map[string]any) ([]byte, error) {
	return toml.Marshal(m)
}
