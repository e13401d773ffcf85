package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound     = errors.New("configuration file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("configuration file is empty")
)

// DefaultConfigFile is looked up in the working directory when no --config
// flag is given.
const DefaultConfigFile = "jsond.yaml"

// LoadFile reads a Config from a YAML file, layered over the defaults.
// Returns wrapped sentinel errors for common failure cases.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrInvalidYAML, path, err)
	}

	return cfg, nil
}

// LoadFileIfExists loads the config file when present and falls back to the
// defaults when it is not. Any other failure is returned.
func LoadFileIfExists(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, ErrFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}
