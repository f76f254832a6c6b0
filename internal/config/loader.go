package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const zombiesFile = "zombies.yaml"

// LoadZombies loads the zombie game configuration.
// Search order: customPath -> ~/.word-zombies/configs/zombies.yaml -> ./configs/zombies.yaml -> embedded default
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. The result is validated before it is returned.
func LoadZombies(customPath string) (ZombiesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ZombiesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ZombiesConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(zombiesFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", zombiesFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultZombiesYAML)
	if err != nil {
		return DefaultZombiesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultZombiesConfig and validates the result.
func Parse(data []byte) (ZombiesConfig, error) {
	cfg := DefaultZombiesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ZombiesConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ZombiesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".word-zombies", "configs", filename)
}
