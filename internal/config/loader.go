package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPipes loads the Pipes configuration.
// Search order: customPath -> ~/.pipes/configs/pipes.yaml -> ./configs/pipes.yaml -> embedded default
func LoadPipes(customPath string) (PipesConfig, error) {
	var cfg PipesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pipes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pipes.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg)
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPipesYAML, &cfg); err != nil {
		return DefaultPipesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg)
}

// finish fills missing values and checks the theme resolves.
func finish(cfg PipesConfig) (PipesConfig, error) {
	cfg.normalize()
	if _, err := cfg.Theme.Palette(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pipes", "configs", filename)
}
