// Package config loads the optional netgliffy configuration file.
//
// The file is TOML. Every key is optional; anything left out keeps its
// default, and the defaults reproduce the standard Gliffy grid:
//
//	preview = "subnets.svg"
//	detailed_preview = false
//
//	[layout]
//	origin_x = 100
//	origin_y = 100
//	spacing = 150
//	columns = 5
//	shape_width = 120
//	shape_height = 60
//	stage_width = 1000
//	stage_height = 1000
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/netgliffy/pkg/errors"
	"github.com/matzehuels/netgliffy/pkg/gliffy"
)

// Config is the complete file configuration.
type Config struct {
	// Preview is the default SVG preview path; empty disables the preview.
	Preview string `toml:"preview"`
	// DetailedPreview adds prefix length and URL to preview labels.
	DetailedPreview bool `toml:"detailed_preview"`
	// Layout controls shape placement in the Gliffy document.
	Layout gliffy.Layout `toml:"layout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Layout: gliffy.DefaultLayout()}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	return c.Layout.Validate()
}

// Load reads the TOML file at path on top of [Default].
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
