// Package config loads a vexysvgo.Config from a YAML (or JSON, since JSON
// is a YAML subset) configuration file, grounded on MacroPower-x/log's
// Flags/Config/RegisterFlags split and decoded with goccy/go-yaml, the same
// library family MacroPower-x's own magicschema generator uses for its
// YAML-shaped input.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
)

// pluginDirective mirrors vexysvgo.PluginDirective's three accepted shapes:
// a bare string, or a mapping with "name", optional "enabled", optional
// "params".
type pluginDirective struct {
	Name    string         `yaml:"name"`
	Enabled *bool          `yaml:"enabled"`
	Params  map[string]any `yaml:"params"`
}

func (d *pluginDirective) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		d.Name = name
		return nil
	}
	var aux struct {
		Name    string         `yaml:"name"`
		Enabled *bool          `yaml:"enabled"`
		Params  map[string]any `yaml:"params"`
	}
	if err := unmarshal(&aux); err != nil {
		return err
	}
	d.Name, d.Enabled, d.Params = aux.Name, aux.Enabled, aux.Params
	return nil
}

// fileConfig is the on-disk shape, using vexysvgo's naming for top-level
// keys (SVGO parity, per the spec's configuration-level compatibility goal).
type fileConfig struct {
	Multipass      *bool              `yaml:"multipass"`
	FloatPrecision *int               `yaml:"floatPrecision"`
	Plugins        []pluginDirective  `yaml:"plugins"`
	JS2SVG         *js2svgFile        `yaml:"js2svg"`
}

type js2svgFile struct {
	Pretty       *bool   `yaml:"pretty"`
	Indent       *int    `yaml:"indent"`
	EOL          *string `yaml:"eol"`
	FinalNewline *bool   `yaml:"finalNewline"`
}

// Load reads and decodes a configuration file at path, starting from
// vexysvgo.DefaultConfig and overriding only the fields present in the
// file.
func Load(path string) (vexysvgo.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return vexysvgo.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML/JSON bytes into a vexysvgo.Config.
func Parse(data []byte) (vexysvgo.Config, error) {
	cfg := vexysvgo.DefaultConfig()

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return vexysvgo.Config{}, fmt.Errorf("%w: %v", vexysvgo.ErrConfig, err)
	}

	if fc.Multipass != nil {
		cfg.Multipass = *fc.Multipass
	}
	if fc.FloatPrecision != nil {
		cfg.FloatPrecision = *fc.FloatPrecision
	}
	if fc.Plugins != nil {
		cfg.Plugins = make([]vexysvgo.PluginDirective, len(fc.Plugins))
		for i, d := range fc.Plugins {
			cfg.Plugins[i] = vexysvgo.PluginDirective{Name: d.Name, Enabled: d.Enabled, Params: d.Params}
		}
	}
	if fc.JS2SVG != nil {
		if fc.JS2SVG.Pretty != nil {
			cfg.JS2SVG.Pretty = *fc.JS2SVG.Pretty
		}
		if fc.JS2SVG.Indent != nil {
			cfg.JS2SVG.Indent = *fc.JS2SVG.Indent
		}
		if fc.JS2SVG.EOL != nil {
			cfg.JS2SVG.EOL = vexysvgo.EOL(*fc.JS2SVG.EOL)
		}
		if fc.JS2SVG.FinalNewline != nil {
			cfg.JS2SVG.FinalNewline = *fc.JS2SVG.FinalNewline
		}
	}

	return cfg, nil
}
