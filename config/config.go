// Package config handles cpool.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const FileName = "cpool.toml"

type Config struct {
	Format    string `toml:"format"`
	Verbosity int    `toml:"verbosity"`
	LogFile   string `toml:"log_file"`
	Jobs      int    `toml:"jobs"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

func Default() *Config {
	return &Config{
		Format: "line",
		Jobs:   4,
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	cfg.Path = path

	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}

// Find walks up from startDir looking for cpool.toml and loads the first one
// found. Without one, it returns the defaults.
func Find(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
