// Package config provides configuration helpers and config file parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/numeracal/internal/model"
)

// FileConfig represents the config file.
type FileConfig struct {
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Session SessionConfig `toml:"session" yaml:"session"`
}

// OutputConfig maps output-related settings.
type OutputConfig struct {
	Less        *bool   `toml:"less" yaml:"less"`
	Raw         *bool   `toml:"raw" yaml:"raw"`
	NoTotal     *bool   `toml:"no-total" yaml:"no-total"`
	JSON        *bool   `toml:"json" yaml:"json"`
	Quiet       *bool   `toml:"quiet" yaml:"quiet"`
	Color       *string `toml:"color" yaml:"color"`
	Decorations *string `toml:"decorations" yaml:"decorations"`
}

// SessionConfig maps run-mode settings.
type SessionConfig struct {
	Fast      *bool `toml:"fast" yaml:"fast"`
	Recursive *bool `toml:"recursive" yaml:"recursive"`
}

// LoadConfig reads a TOML or YAML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

func (c FileConfig) validate() error {
	for key, value := range map[string]*string{
		"output.color":       c.Output.Color,
		"output.decorations": c.Output.Decorations,
	} {
		if value == nil {
			continue
		}
		if _, err := model.ParseToggle(*value); err != nil {
			return fmt.Errorf("invalid config value for %s: %w", key, err)
		}
	}
	return nil
}
