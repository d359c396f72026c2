// Package config handles stackvm.toml host configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no -config flag is given; a missing file is not an error.
const DefaultPath = "stackvm.toml"

// Config mirrors the command-line flags. Flags given explicitly win.
type Config struct {
	Verbose   bool `toml:"verbose"`
	NoColor   bool `toml:"no_color"`
	Trace     bool `toml:"trace"`
	ShowStack bool `toml:"show_stack"`
	Capacity  int  `toml:"capacity"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{Capacity: 1000}
}

// Load parses the TOML file at path. When required is false a missing file
// yields the defaults.
func Load(path string, required bool) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if c.Capacity < 0 {
		return nil, fmt.Errorf("invalid capacity %d in %s", c.Capacity, path)
	}

	return c, nil
}
