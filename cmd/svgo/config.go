package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/svgo"
	"github.com/tdewolff/svgo/plugin"
	"github.com/tdewolff/svgo/stringify"
	"gopkg.in/yaml.v3"
)

// Config is the configuration file of the pipeline and its output format.
//
//	pretty: true
//	plugins:
//	  - cleanupAttrs
//	  - name: cleanupIds
//	    params:
//	      preserve: [logo]
type Config struct {
	Pretty       bool           `yaml:"pretty"`
	Indent       int            `yaml:"indent"`
	EOL          string         `yaml:"eol"`
	FinalNewline bool           `yaml:"finalNewline"`
	Preset       string         `yaml:"preset"`
	Plugins      []PluginConfig `yaml:"plugins"`
}

// PluginConfig is a plugin by name, optionally with parameters that override its defaults.
type PluginConfig struct {
	Name   string    `yaml:"name"`
	Params yaml.Node `yaml:"params"`
}

func (pc *PluginConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		pc.Name = value.Value
		return nil
	}
	type plain PluginConfig
	return value.Decode((*plain)(pc))
}

// DefaultConfig returns the default preset with compact output.
func DefaultConfig() *Config {
	return &Config{
		Indent: 4,
		Preset: "default",
	}
}

// ParseConfig parses a YAML configuration, absent fields keep their defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// Optimizer returns an optimizer for the configuration. The listed plugins take precedence over the preset.
func (cfg *Config) Optimizer() (*svgo.Optimizer, error) {
	var plugins []svgo.Plugin
	if len(cfg.Plugins) == 0 {
		var ok bool
		if plugins, ok = svgo.Preset(cfg.Preset); !ok {
			return nil, fmt.Errorf("unknown preset: %s", cfg.Preset)
		}
	} else {
		for _, pc := range cfg.Plugins {
			p, err := plugin.Lookup(pc.Name)
			if err != nil {
				return nil, err
			}
			if pc.Params.Kind != 0 {
				if err := pc.Params.Decode(p); err != nil {
					return nil, fmt.Errorf("plugin %s: %w", pc.Name, err)
				}
			}
			plugins = append(plugins, p)
		}
	}

	eol, err := stringify.ParseEOL(cfg.EOL)
	if err != nil {
		return nil, err
	}

	o := svgo.New(plugins...)
	o.Stringify.Pretty = cfg.Pretty
	o.Stringify.Indent = cfg.Indent
	o.Stringify.EOL = eol
	o.Stringify.FinalNewline = cfg.FinalNewline
	return o, nil
}

// disable removes the named plugins from the pipeline.
func disable(o *svgo.Optimizer, names []string) error {
	for _, name := range names {
		if _, err := plugin.Lookup(name); err != nil {
			return err
		}
		plugins := o.Plugins[:0]
		for _, p := range o.Plugins {
			if p.Name() != name {
				plugins = append(plugins, p)
			}
		}
		o.Plugins = plugins
	}
	return nil
}

// setPrecision sets the number of decimals of the numeric plugin when it is part of the pipeline.
func setPrecision(o *svgo.Optimizer, precision int) {
	for _, p := range o.Plugins {
		if numeric, ok := p.(*plugin.CleanupNumericValues); ok {
			numeric.FloatPrecision = precision
		}
	}
}
