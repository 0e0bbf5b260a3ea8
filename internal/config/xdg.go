package config

import (
	"os"
	"path/filepath"
)

const appName = "numeracal"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigDir returns the directory holding the config file.
func DefaultConfigDir() string {
	return filepath.Join(XDGConfigHome(), appName)
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}

// ResolveConfigPath returns the TOML config path, or a YAML sibling when
// only that exists.
func ResolveConfigPath() string {
	tomlPath := DefaultConfigPath()
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		p := filepath.Join(DefaultConfigDir(), name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return tomlPath
}
