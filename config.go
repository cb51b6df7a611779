package bioflow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the constructor options for callers that keep flow
// settings in a file. Zero values leave the corresponding defaults alone,
// so a partial file is fine.
type Config struct {
	AppName        string  `yaml:"app_name"`
	UserID         string  `yaml:"user_id"`
	MaxRefinements *int    `yaml:"max_refinements"`
	SearchCost     float64 `yaml:"search_cost"`
	Instructions   struct {
		Researcher string `yaml:"researcher"`
		Answerer   string `yaml:"answerer"`
		Reviewer   string `yaml:"reviewer"`
		Refiner    string `yaml:"refiner"`
	} `yaml:"instructions"`
}

// LoadConfig reads a YAML flow configuration.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options translates the config into constructor options. Only fields that
// were actually set are translated.
func (c Config) Options() []Option {
	var opts []Option
	if c.AppName != "" {
		opts = append(opts, WithAppName(c.AppName))
	}
	if c.UserID != "" {
		opts = append(opts, WithUserID(c.UserID))
	}
	if c.MaxRefinements != nil {
		opts = append(opts, WithMaxRefinements(*c.MaxRefinements))
	}
	if c.SearchCost > 0 {
		opts = append(opts, WithSearchCost(c.SearchCost))
	}
	if c.Instructions.Researcher != "" {
		opts = append(opts, WithResearcherInstructions(c.Instructions.Researcher))
	}
	if c.Instructions.Answerer != "" {
		opts = append(opts, WithAnswererInstructions(c.Instructions.Answerer))
	}
	if c.Instructions.Reviewer != "" {
		opts = append(opts, WithReviewerInstructions(c.Instructions.Reviewer))
	}
	if c.Instructions.Refiner != "" {
		opts = append(opts, WithRefinerInstructions(c.Instructions.Refiner))
	}
	return opts
}
