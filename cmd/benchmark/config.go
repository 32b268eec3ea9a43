package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type benchmarkConfig struct {
	Widths     []int `yaml:"widths"`
	Heights    []int `yaml:"heights"`
	Iterations int   `yaml:"iterations"`
	// ByValue registers every watch with structural comparison.
	ByValue bool `yaml:"byValue"`
}

func defaultConfig() *benchmarkConfig {
	return &benchmarkConfig{
		Widths:     []int{1, 10, 100, 1_000},
		Heights:    []int{1, 10, 100},
		Iterations: 100,
	}
}

func loadConfig(path string) (*benchmarkConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *benchmarkConfig) validate() error {
	if len(c.Widths) == 0 || len(c.Heights) == 0 {
		return fmt.Errorf("widths and heights must not be empty")
	}
	for _, v := range append(append([]int{}, c.Widths...), c.Heights...) {
		if v <= 0 {
			return fmt.Errorf("widths and heights must be positive, got %d", v)
		}
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	return nil
}
