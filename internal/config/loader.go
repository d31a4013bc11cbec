package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no explicit
// config path is given.
const EnvConfigPath = "DRAGON_CONFIG"

// Load loads the game configuration and validates it.
// Search order: customPath -> $DRAGON_CONFIG -> ~/.flappy-dragon/dragon.yaml ->
// ./configs/dragon.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only some keys.
// Missing search-path files are skipped; a file that exists but does not
// parse or validate is an error.
func Load(customPath string) (DragonConfig, error) {
	if customPath == "" {
		customPath = GetEnv(EnvConfigPath, "")
	}

	// An explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{userConfigPath("dragon.yaml"), filepath.Join("configs", "dragon.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		// A file that exists must parse
		cfg, err := Parse(data)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDragonYAML)
	if err != nil {
		return DefaultDragonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML over the hard-coded defaults. Unknown keys are rejected
// so typos do not silently fall back to a default.
func Parse(data []byte) (DragonConfig, error) {
	cfg := DefaultDragonConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document leaves the defaults in place
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return DragonConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg DragonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy-dragon", filename)
}
