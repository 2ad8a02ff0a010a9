package cukejunit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is picked up from the working directory when no --config
// flag is given.
const DefaultConfigFile = "cukejunit.yaml"

// fileConfig mirrors the optional YAML config file. Every field can also be
// set by flag; flags win.
type fileConfig struct {
	OutputDir   string   `yaml:"output_dir"`
	SearchRoots []string `yaml:"search_roots"`
	Summary     *bool    `yaml:"summary"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
