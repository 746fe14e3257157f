package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/svg2pptx/internal/policy"
	"github.com/ivlev/svg2pptx/internal/sampler"
)

// Config carries every knob of one conversion run.
type Config struct {
	InputPath      string            `yaml:"input"`
	OutputPath     string            `yaml:"output"`
	TargetDuration float64           `yaml:"target_duration"` // seconds, 0 means derive from animations
	Sampler        sampler.Config    `yaml:"sampler"`
	Limits         policy.Limits     `yaml:"limits"`
	ShapeMap       map[string]string `yaml:"shape_map"` // element id -> target shape id
	ShowStats      bool              `yaml:"show_stats"`
	BuildVersion   string            `yaml:"-"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Sampler: sampler.DefaultConfig(),
		Limits:  policy.DefaultLimits(),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
