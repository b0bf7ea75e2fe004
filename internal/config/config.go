// Package config loads the optional TOML file carrying store defaults for
// the CLI. A missing file is not an error; flags override file values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"docvault/internal/domain"
)

// File is the on-disk shape of the CLI configuration.
type File struct {
	Store StoreSection `toml:"store"`
}

// StoreSection mirrors the store persistence options.
type StoreSection struct {
	Path       string `toml:"path"`
	Iterations int    `toml:"iterations"`
	Digest     string `toml:"digest"`
	Algorithm  string `toml:"algorithm"`
}

// DefaultPath returns the conventional config location,
// $HOME/.docvault/config.toml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".docvault", "config.toml")
}

// Load reads the config at path. A missing file (or empty path) yields
// zero values, which Normalized config defaults later fill in.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, nil
		}
		return File{}, errors.Wrap(err, "parse config file")
	}
	return f, nil
}

// Apply overlays the file's store section onto cfg, leaving fields the
// file does not set untouched.
func (f File) Apply(cfg domain.Config) domain.Config {
	if f.Store.Iterations > 0 {
		cfg.Iterations = f.Store.Iterations
	}
	if f.Store.Digest != "" {
		cfg.Digest = f.Store.Digest
	}
	if f.Store.Algorithm != "" {
		cfg.Algorithm = f.Store.Algorithm
	}
	return cfg
}
