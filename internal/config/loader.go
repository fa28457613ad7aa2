package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names probed in each search directory, in order.
var configNames = []string{"platformer.yaml", "platformer.yml", "platformer.toml"}

// LoadPlatformer loads platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.{yaml,yml,toml}
// -> ./configs/platformer.{yaml,yml,toml} -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. The result is validated before it is returned.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data, filepath.Ext(customPath))
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, name := range configNames {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			if cfg, err := decode(data, filepath.Ext(name)); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultPlatformerYAML, ".yaml")
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data as TOML when ext is ".toml" and as YAML otherwise.
func decode(data []byte, ext string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if strings.EqualFold(ext, ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg, nil
}

// userConfigDir returns ~/.platformer/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs")
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Hero.Lives = 5
		cfg.Enemy.PatrolSpeed = 5
		cfg.Enemy.IdleTime = 2.5
	case DifficultyHard:
		cfg.Hero.Lives = 2
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Progression.Type = "coins"
	}
}
