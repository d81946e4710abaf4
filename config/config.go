// Package config provides configuration loading for mindcube.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete mindcube configuration
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
}

// InputConfig configures the dataset source
type InputConfig struct {
	// Path is the survey CSV path; glob patterns are allowed but must
	// resolve to exactly one file
	Path string `yaml:"path"`
}

// OutputConfig configures the generated Turtle files
type OutputConfig struct {
	// TBox is the schema graph output path
	TBox string `yaml:"tbox"`
	// ABox is the instance graph output path
	ABox string `yaml:"abox"`
}

// BenchmarkConfig configures the benchmark stage
type BenchmarkConfig struct {
	// Sizes are the subsample thresholds (maximum row identifier)
	Sizes []int `yaml:"sizes"`
	// EfficiencyChart is the full-dataset bar chart output path
	EfficiencyChart string `yaml:"efficiency_chart"`
	// ScalabilityChart is the size-vs-time line chart output path
	ScalabilityChart string `yaml:"scalability_chart"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "mental_health_data_final_data.csv",
		},
		Output: OutputConfig{
			TBox: "tbox.ttl",
			ABox: "abox.ttl",
		},
		Benchmark: BenchmarkConfig{
			Sizes:            []int{10000, 25000, 50000},
			EfficiencyChart:  "query_efficiency.png",
			ScalabilityChart: "scalability_performance.png",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if c.Output.TBox == "" {
		return fmt.Errorf("output.tbox is required")
	}
	if c.Output.ABox == "" {
		return fmt.Errorf("output.abox is required")
	}
	if len(c.Benchmark.Sizes) == 0 {
		return fmt.Errorf("benchmark.sizes must not be empty")
	}
	for _, size := range c.Benchmark.Sizes {
		if size <= 0 {
			return fmt.Errorf("benchmark.sizes must be positive, got %d", size)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Input.Path != "" {
		c.Input.Path = other.Input.Path
	}
	if other.Output.TBox != "" {
		c.Output.TBox = other.Output.TBox
	}
	if other.Output.ABox != "" {
		c.Output.ABox = other.Output.ABox
	}
	if len(other.Benchmark.Sizes) > 0 {
		c.Benchmark.Sizes = other.Benchmark.Sizes
	}
	if other.Benchmark.EfficiencyChart != "" {
		c.Benchmark.EfficiencyChart = other.Benchmark.EfficiencyChart
	}
	if other.Benchmark.ScalabilityChart != "" {
		c.Benchmark.ScalabilityChart = other.Benchmark.ScalabilityChart
	}
}
