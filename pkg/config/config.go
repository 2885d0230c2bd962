// Package config loads and validates the analyzer configuration from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the full configuration for one analysis run.
type Config struct {
	Dataset struct {
		Path           string `yaml:"path" validate:"required"`
		Delimiter      string `yaml:"delimiter" validate:"omitempty,len=1"`
		SkipHeader     bool   `yaml:"skip_header"`
		CategoryColumn int    `yaml:"category_column" validate:"gte=0"`
		OriginColumn   int    `yaml:"origin_column" validate:"gte=0"`
		DestColumn     int    `yaml:"dest_column" validate:"gte=0"`
	} `yaml:"dataset"`

	Analysis struct {
		TopK    int `yaml:"top_k" validate:"gte=0"`
		Workers int `yaml:"workers" validate:"gte=0"`
		// Optional endpoints for an explicit shortest-path query; when
		// empty the most frequent route's endpoints are used.
		PathFrom string `yaml:"path_from"`
		PathTo   string `yaml:"path_to"`
	} `yaml:"analysis"`

	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	MetricsListen string `yaml:"metrics_listen"` // host:port; empty disables the endpoint
}

// Default returns the configuration used when no file is given: the stock
// ride-log column layout, top 5 routes, one worker per CPU.
func Default() Config {
	var c Config
	c.Dataset.Delimiter = ","
	c.Dataset.SkipHeader = true
	c.Dataset.CategoryColumn = 2
	c.Dataset.OriginColumn = 3
	c.Dataset.DestColumn = 4
	c.Analysis.TopK = 5
	c.Analysis.Workers = 0 // 0 = NumCPU
	c.LogLevel = "info"
	return c
}

// Load reads a YAML config file, layering it over the defaults, and
// validates the result.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks field constraints and cross-field consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Dataset.OriginColumn == c.Dataset.DestColumn {
		return fmt.Errorf("config: origin_column and dest_column must differ")
	}
	if (c.Analysis.PathFrom == "") != (c.Analysis.PathTo == "") {
		return fmt.Errorf("config: path_from and path_to must be set together")
	}
	return nil
}
