// Package config loads CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/strbin"
)

// Config holds defaults applied before command-line flags.
type Config struct {
	Format   string `yaml:"format"`
	Reverse  bool   `yaml:"reverse"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:   string(strbin.FormatBinary),
		LogLevel: "warning",
	}
}

// Load reads the file at path over Default.
// An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result.
// Keys absent from data keep their current values.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if _, err := cfg.ParsedFormat(); err != nil {
		return err
	}
	return nil
}

// ParsedFormat resolves Format, treating an empty value as binary.
func (c Config) ParsedFormat() (strbin.Format, error) {
	if c.Format == "" {
		return strbin.FormatBinary, nil
	}
	return strbin.ParseFormat(c.Format)
}
