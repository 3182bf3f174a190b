package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const localConfigPath = "configs/torchlight.yaml"

// LoadConfig reads game configuration.
// Search order: customPath -> ./configs/torchlight.yaml -> built-in defaults.
// Files are unmarshalled over the defaults, so partial configs work.
func LoadConfig(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile(localConfigPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", localConfigPath, err)
		}
	}

	return cfg, nil
}
