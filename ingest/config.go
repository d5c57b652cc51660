// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults follow the Paleobiology Database occurrence download layout.
const (
	DefaultTaxonColumn    = "accepted_name"
	DefaultLocalityColumn = "formation"
	DefaultDelimiter      = ","
	DefaultTimeout        = 30 * time.Second
)

var validate = validator.New()

// Config describes the table layout and how to reach it.
type Config struct {
	// TaxonColumn is the header of the taxon name column.
	TaxonColumn string `yaml:"taxon_column" validate:"required"`

	// LocalityColumn is the header of the locality/formation column.
	LocalityColumn string `yaml:"locality_column" validate:"required,nefield=TaxonColumn"`

	// Delimiter is the single field separator character.
	Delimiter string `yaml:"delimiter" validate:"required,len=1"`

	// Comment, when set, marks lines to skip.
	Comment string `yaml:"comment" validate:"omitempty,len=1,nefield=Delimiter"`

	// NullValues are cell values read as missing (the empty cell always is).
	NullValues []string `yaml:"null_values"`

	// Timeout bounds a URL fetch; zero means no extra bound beyond ctx.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		TaxonColumn:    DefaultTaxonColumn,
		LocalityColumn: DefaultLocalityColumn,
		Delimiter:      DefaultDelimiter,
		NullValues:     []string{"NA"},
		Timeout:        DefaultTimeout,
	}
}

// Validate checks struct tags and reports every violated field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
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

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s character", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
