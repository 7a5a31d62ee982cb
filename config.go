package uuidgen

import (
	"fmt"
	"os"

	"github.com/viant/uuidgen/random"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the generator configuration.
// The zero-value is not valid; start from DefaultConfig.
type Config struct {
	Source    string        `json:"source" yaml:"source"`
	Count     int           `json:"count" yaml:"count"`
	UpperCase bool          `json:"upperCase" yaml:"upperCase"`
	Output    string        `json:"output,omitempty" yaml:"output,omitempty"`
	Tracing   TracingConfig `json:"tracing" yaml:"tracing"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config that generates a single identifier from
// the automatically selected source.
func DefaultConfig() *Config {
	return &Config{
		Source: random.ModeAuto.String(),
		Count:  1,
		Tracing: TracingConfig{
			ServiceName:    "uuidgen",
			ServiceVersion: Version,
		},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if _, err := random.ParseMode(c.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := validateCount(c.Count); err != nil {
		return err
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName is required when tracing is enabled")
	}
	return nil
}

// LoadConfig decodes the YAML file at path over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", path, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", path, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", path, err)
	}
	return ret, nil
}
