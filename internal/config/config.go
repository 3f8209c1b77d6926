// Package config loads tool settings from an .lpp.yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up by Find.
const FileName = ".lpp.yaml"

type Config struct {
	// Color forces colored output on or off. Nil leaves the terminal check
	// to the color library.
	Color *bool `yaml:"color"`

	Log Log `yaml:"log"`

	// Include lists doublestar patterns checked when no paths are given.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Jobs bounds how many files are parsed at once.
	Jobs int `yaml:"jobs"`

	// Reference cross-checks every parse against the reference grammar.
	Reference bool `yaml:"reference"`
}

type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Include: []string{"**/*.lpp"},
		Jobs:    runtime.NumCPU(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Find walks up from dir looking for FileName. It returns "" when there is
// none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Log.Verbosity < 0 || c.Log.Verbosity > 5 {
		return fmt.Errorf("log.verbosity must be between 0 and 5, got %d", c.Log.Verbosity)
	}
	if len(c.Include) == 0 {
		return errors.New("include must name at least one pattern")
	}
	return nil
}
