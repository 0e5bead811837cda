// Package config loads the optional TOML configuration file that
// adjusts marker glyphs, traversal limits, and render defaults.
//
// Configuration is looked up as gedcom.toml in the working directory,
// then as config.toml under the user config directory (XDG standard,
// ~/.config/gedcom/). Every key is optional; absent keys keep their
// built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pedigree"
	"github.com/sligocki/gedcom/pkg/relate"
)

const appName = "gedcom"

// FileName is the config file searched for in the working directory.
const FileName = "gedcom.toml"

// Markers configures the name-prefix glyphs recognized in NAME
// payloads of the source file.
type Markers struct {
	// Home marks the reference person. Exactly one person must carry
	// it for home-relative queries to work.
	Home string `toml:"home"`
	// Match marks DNA matches. Any count is fine.
	Match string `toml:"match"`
}

// Limits bounds graph traversals.
type Limits struct {
	// TraversalSteps caps the number of queue steps one ancestor-line
	// walk may take before giving up.
	TraversalSteps int `toml:"traversal_steps"`
}

// Render holds rendering defaults applied when flags are not given.
type Render struct {
	// Format is the default output format of the render command.
	Format string `toml:"format"`
	// Detailed extends node labels with life years.
	Detailed bool `toml:"detailed"`
}

// Config is the full configuration tree of a gedcom.toml file.
type Config struct {
	Markers Markers `toml:"markers"`
	Limits  Limits  `toml:"limits"`
	Render  Render  `toml:"render"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Markers: Markers{Home: pedigree.HomeMarker, Match: pedigree.MatchMarker},
		Limits:  Limits{TraversalSteps: relate.DefaultMaxSteps},
		Render:  Render{Format: "svg"},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing
// file is an error here; use [LoadDefault] for optional lookup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the first config file found along the search path,
// or the defaults when none exists.
func LoadDefault() (Config, error) {
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return Load(path)
	}
	return Default(), nil
}

func searchPaths() []string {
	paths := []string{FileName}
	if dir, err := configDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "config.toml"))
	}
	return paths
}

// configDir returns the config directory using the XDG standard (~/.config/gedcom/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func (c Config) validate() error {
	if err := errors.ValidateMarker(c.Markers.Home); err != nil {
		return err
	}
	if err := errors.ValidateMarker(c.Markers.Match); err != nil {
		return err
	}
	if c.Markers.Home == c.Markers.Match {
		return errors.New(errors.ErrCodeInvalidConfig, "home and match markers must differ")
	}
	if c.Limits.TraversalSteps <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "traversal_steps must be positive")
	}
	return nil
}
