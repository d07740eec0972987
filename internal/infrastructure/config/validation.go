package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration, including the scoring
// constraint that the low threshold stays below the high one.
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	if err := v.Validate(cfg); err != nil {
		return err
	}

	if cfg.Scoring.SaturationLowMax >= cfg.Scoring.SaturationHighMin {
		return fmt.Errorf(
			"scoring thresholds out of order: saturation_low_max (%v) must be below saturation_high_min (%v)",
			cfg.Scoring.SaturationLowMax, cfg.Scoring.SaturationHighMin,
		)
	}

	for name, capacity := range cfg.Scoring.Capacities {
		if capacity <= 0 {
			return fmt.Errorf("reference capacity for %q must be positive, got %v", name, capacity)
		}
	}

	return nil
}
