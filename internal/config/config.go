// Package config loads editor/controller defaults from a YAML file the
// way czcorpus-vert-tagextract's cnf package loads its own config: a
// single struct, a Load function, defaults applied after parse.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables spec.md leaves to the controller/host: tab
// and wrap geometry, wrap mode, and the colour table consulted by
// internal/textbuf's StyleEntry for the default (unstyled) style slot.
type Config struct {
	TabColumns  int        `yaml:"tabColumns"`
	WrapColumns int        `yaml:"wrapColumns"`
	WordWrap    bool       `yaml:"wordWrap"`
	FixedWrap   bool       `yaml:"fixedWrap"`
	ShowActive  bool       `yaml:"showActive"`
	ShowMatch   bool       `yaml:"showMatch"`
	Colors      ColorTable `yaml:"colors"`
	LogLevel    string     `yaml:"logLevel"`
}

// ColorTable configures the default style slot's normal and selected
// colour pairs (four colours), in "#rrggbb" form.
type ColorTable struct {
	NormalFG   string `yaml:"normalFG"`
	NormalBG   string `yaml:"normalBG"`
	SelectedFG string `yaml:"selectedFG"`
	SelectedBG string `yaml:"selectedBG"`
}

// Default returns the built-in configuration applied when no file is
// given, or to fill in zero-valued fields after a partial file is
// parsed.
func Default() Config {
	return Config{
		TabColumns:  8,
		WrapColumns: 80,
		WordWrap:    true,
		Colors: ColorTable{
			NormalFG:   "#d0d0d0",
			NormalBG:   "#1e1e1e",
			SelectedFG: "#1e1e1e",
			SelectedBG: "#d0d0d0",
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file at path, then fills
// TabColumns, WrapColumns and LogLevel from Default when they are zero,
// and Colors when all four colours are empty. Boolean fields keep the
// file's value, so an omitted wordWrap reads as false. An empty path
// returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(&parsed, cfg)
	return parsed, nil
}

func applyDefaults(dst *Config, def Config) {
	if dst.TabColumns == 0 {
		dst.TabColumns = def.TabColumns
	}
	if dst.WrapColumns == 0 {
		dst.WrapColumns = def.WrapColumns
	}
	if dst.Colors == (ColorTable{}) {
		dst.Colors = def.Colors
	}
	if dst.LogLevel == "" {
		dst.LogLevel = def.LogLevel
	}
}
