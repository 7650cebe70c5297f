package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGlider loads Meteor Glider configuration.
// Search order: customPath -> ~/.glider/configs/glider.yaml -> ./configs/glider.yaml -> embedded default
//
// Files are decoded on top of DefaultGliderConfig, so a file only needs
// the keys it wants to change.
func LoadGlider(customPath string) (GliderConfig, error) {
	cfg := DefaultGliderConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultGliderConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultGliderConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("glider.yaml"),
		filepath.Join("configs", "glider.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultGliderConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGliderYAML, &cfg); err != nil {
		return DefaultGliderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glider", "configs", filename)
}

// ApplyGliderPreset modifies the config based on a difficulty preset.
func ApplyGliderPreset(cfg *GliderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.MaxCount = 7
		cfg.Projectiles.Radius = 8
	case DifficultyHard:
		cfg.Obstacles.MaxCount = 14
		cfg.Obstacles.HazardIntervalMs = 2500
	}
}
