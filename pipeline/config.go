// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/biogeo/ingest"
	"github.com/katalvlaran/biogeo/stats"
)

// ErrInvalidConfig indicates a Config that failed validation.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

var validate = validator.New()

// Config is the YAML-loadable run configuration.
//
//	ingest:
//	  taxon_column: accepted_name
//	  locality_column: formation
//	  timeout: 10s
//	diameter: largest-component
type Config struct {
	Ingest ingest.Config `yaml:"ingest"`

	// Diameter names the disconnected-graph policy, see stats.ParseDiameterPolicy.
	Diameter string `yaml:"diameter"`
}

// DefaultConfig returns ingest defaults and the largest-component policy.
func DefaultConfig() Config {
	return Config{
		Ingest:   ingest.DefaultConfig(),
		Diameter: stats.DiameterLargestComponent.String(),
	}
}

// Validate checks the ingest section and the diameter policy name.
func (c Config) Validate() error {
	if err := c.Ingest.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validate.Var(c.Diameter, "required,oneof=strict largest-component per-component"); err != nil {
		return fmt.Errorf("%w: diameter %q is not a known policy", ErrInvalidConfig, c.Diameter)
	}

	return nil
}

// Policy returns the parsed diameter policy.
func (c Config) Policy() (stats.DiameterPolicy, error) {
	return stats.ParseDiameterPolicy(c.Diameter)
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %q: %v", ErrInvalidConfig, path, err)
	}

	return ParseConfig(data)
}
