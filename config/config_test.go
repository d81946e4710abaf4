package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "mental_health_data_final_data.csv", cfg.Input.Path)
	assert.Equal(t, "tbox.ttl", cfg.Output.TBox)
	assert.Equal(t, "abox.ttl", cfg.Output.ABox)
	assert.Equal(t, []int{10000, 25000, 50000}, cfg.Benchmark.Sizes)
	assert.Equal(t, "query_efficiency.png", cfg.Benchmark.EfficiencyChart)
	assert.Equal(t, "scalability_performance.png", cfg.Benchmark.ScalabilityChart)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input path", func(c *Config) { c.Input.Path = "" }},
		{"missing tbox", func(c *Config) { c.Output.TBox = "" }},
		{"missing abox", func(c *Config) { c.Output.ABox = "" }},
		{"empty sizes", func(c *Config) { c.Benchmark.Sizes = nil }},
		{"non-positive size", func(c *Config) { c.Benchmark.Sizes = []int{1000, 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input:
  path: survey.csv
benchmark:
  sizes: [100, 200]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "survey.csv", cfg.Input.Path)
	assert.Equal(t, []int{100, 200}, cfg.Benchmark.Sizes)
	// Unset fields keep their defaults.
	assert.Equal(t, "tbox.ttl", cfg.Output.TBox)
	assert.Equal(t, "query_efficiency.png", cfg.Benchmark.EfficiencyChart)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [not a map"), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Input:     InputConfig{Path: "override.csv"},
		Benchmark: BenchmarkConfig{Sizes: []int{5}},
	})

	assert.Equal(t, "override.csv", base.Input.Path)
	assert.Equal(t, []int{5}, base.Benchmark.Sizes)
	assert.Equal(t, "abox.ttl", base.Output.ABox)

	base.Merge(nil)
	assert.Equal(t, "override.csv", base.Input.Path)
}
