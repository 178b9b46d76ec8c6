package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHighway loads Highway Runner configuration.
// Search order: customPath -> ~/.arcade/configs/highway.yaml -> ./configs/highway.yaml -> embedded default
//
// Only a custom path produces errors; broken files found on the search path
// are skipped. Every candidate is validated before it is accepted.
func LoadHighway(customPath string) (HighwayConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HighwayConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseHighway(data)
		if err != nil {
			return HighwayConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("highway.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseHighway(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "highway.yaml")); err == nil {
		if cfg, err := parseHighway(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseHighway(defaultHighwayYAML); err == nil {
		return cfg, nil
	}
	return DefaultHighwayConfig(), nil // Fallback to hardcoded if embed fails
}

// parseHighway decodes YAML on top of the hardcoded defaults, so partial
// files only override the keys they set.
func parseHighway(data []byte) (HighwayConfig, error) {
	cfg := DefaultHighwayConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HighwayConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HighwayConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyHighwayPreset modifies the config based on a difficulty preset.
func ApplyHighwayPreset(cfg *HighwayConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
