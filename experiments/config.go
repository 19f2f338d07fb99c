package experiments

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ModelTable  = "table"
	ModelRandom = "random"
)

// Config describes one experiment: the decision process, the model scoring
// its choice points, the search limits and where results are written.
type Config struct {
	Name     string        `yaml:"name"`
	LogLevel string        `yaml:"log_level"`
	Model    ModelConfig   `yaml:"model"`
	Process  ProcessConfig `yaml:"process"`
	Search   SearchConfig  `yaml:"search"`
	Output   OutputConfig  `yaml:"output"`
}

type ModelConfig struct {
	Kind    string    `yaml:"kind"`    // "table" or "random"
	Weights []float64 `yaml:"weights"` // Table model only
	Seed    uint64    `yaml:"seed"`    // Random model only
}

type ProcessConfig struct {
	Length   int      `yaml:"length"`
	Alphabet []string `yaml:"alphabet"`
	NoRepeat bool     `yaml:"no_repeat"`
}

type SearchConfig struct {
	MaxRuns        int  `yaml:"max_runs"`
	MaxOutputs     int  `yaml:"max_outputs"`
	PrefixEstimate bool `yaml:"prefix_estimate"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty disables writing
}

func DefaultConfig() Config {
	return Config{
		Name:     "greedy",
		LogLevel: "info",
		Model: ModelConfig{
			Kind:    ModelTable,
			Weights: []float64{0.9, 0.1},
		},
		Process: ProcessConfig{
			Length:   2,
			Alphabet: []string{"a", "b"},
		},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("missing name")
	}
	switch c.Model.Kind {
	case ModelTable:
		if len(c.Model.Weights) == 0 {
			return fmt.Errorf("table model needs weights")
		}
		for i, w := range c.Model.Weights {
			if w < 0 {
				return fmt.Errorf("weight[%d] is negative", i)
			}
		}
	case ModelRandom:
	default:
		return fmt.Errorf("unknown model kind %q", c.Model.Kind)
	}
	if c.Process.Length <= 0 {
		return fmt.Errorf("process length must be positive")
	}
	if len(c.Process.Alphabet) == 0 {
		return fmt.Errorf("process alphabet is empty")
	}
	if c.Process.NoRepeat && len(c.Process.Alphabet) < 2 && c.Process.Length > 1 {
		return fmt.Errorf("no_repeat needs at least two symbols")
	}
	if c.Search.MaxRuns < 0 || c.Search.MaxOutputs < 0 {
		return fmt.Errorf("search limits must not be negative")
	}
	return nil
}

// NewModel builds the model described by the config.
func (c Config) NewModel() (Model, error) {
	switch c.Model.Kind {
	case ModelTable:
		return TableModel{Weights: c.Model.Weights}, nil
	case ModelRandom:
		return RandomModel{Seed: c.Model.Seed}, nil
	}
	return nil, fmt.Errorf("unknown model kind %q", c.Model.Kind)
}
