// Package paths resolves the inventory file and configuration directory
// locations.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative defaults.
const (
	DefaultConfigDirName = ".stockroom"
	DefaultFileName      = "inventory.txt"
)

// Environment variable names for location overrides.
const (
	EnvConfigDir = "STOCKROOM_CONFIG_DIR"
	EnvFile      = "STOCKROOM_FILE"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > STOCKROOM_CONFIG_DIR env > $(CWD)/.stockroom.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveFile returns the inventory file path following the precedence
// chain: flag > config.yaml value > STOCKROOM_FILE env > $(CWD)/inventory.txt.
func ResolveFile(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultFileName), nil
}
