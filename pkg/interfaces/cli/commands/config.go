package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is a serialisable run configuration. It can be stored as a YAML
// file next to the input data and overridden per-invocation by flags; the
// zero value inherits the package defaults.
type RunConfig struct {
	OrdersFile    string `yaml:"orders"`
	InventoryFile string `yaml:"inventory"`
	OutputDir     string `yaml:"output"`
	Format        string `yaml:"format"`
	Verbose       bool   `yaml:"verbose"`
}

// DefaultRunConfig returns a RunConfig populated with the defaults used when
// no config file is supplied
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		OutputDir: "output",
		Format:    "text",
	}
}

// LoadRunConfig reads a YAML run configuration, layered over the defaults
func LoadRunConfig(filename string) (*RunConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	config := DefaultRunConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}

	return config, nil
}

// Validate returns an error describing invalid settings or nil
func (c *RunConfig) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Format {
	case "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("format must be one of text, json, csv; got %q", c.Format)
	}
}
