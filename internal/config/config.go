// Package config loads the handler configuration for the IIIF MCP server.
//
// Configuration is optional: when no config file exists, the defaults below
// apply. Files are TOML, read in priority order (last wins):
//
//  1. ~/.config/iiif-mcp/config.toml
//  2. ./iiif-mcp.toml
//
// The configuration is read once at startup and never mutated afterwards.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults applied when a field is absent from every config file.
const (
	DefaultMaxDimension = 2000
	DefaultQuality      = "default"
	DefaultFormat       = "jpg"
)

type Config struct {
	// MaxDimension is the absolute ceiling on either requested dimension,
	// in pixels. The server's own declared limits never loosen it.
	MaxDimension int `koanf:"max_dimension"`

	// MaxArea is an optional ceiling on total requested pixels.
	// Zero means unconstrained.
	MaxArea int64 `koanf:"max_area"`

	// Quality and Format fill the fixed quality/format suffix of produced
	// request paths.
	Quality string `koanf:"quality"`
	Format  string `koanf:"format"`
}

// Load reads the config files in priority order and applies defaults.
func Load() (*Config, error) {
	return load(configPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = DefaultMaxDimension
	}
	if cfg.MaxArea < 0 {
		cfg.MaxArea = 0
	}
	if cfg.Quality == "" {
		cfg.Quality = DefaultQuality
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	return cfg, nil
}

func configPaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "iiif-mcp", "config.toml"))
	}

	// Working directory overrides the home config.
	paths = append(paths, "iiif-mcp.toml")

	return paths
}
