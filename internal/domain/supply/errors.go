package supply

import (
	"errors"
	"fmt"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// ErrConfigurationMissing is the sentinel matched by errors.Is for any
// per-crop configuration gap.
var ErrConfigurationMissing = errors.New("configuration missing")

// ConfigurationMissingError indicates a crop type has no configured reference
// capacity or price reference. It is surfaced per crop and collected into the
// result envelope; one unconfigured crop never fails the whole batch.
type ConfigurationMissingError struct {
	CropType crop.CropType
	What     string
}

func (e *ConfigurationMissingError) Error() string {
	return fmt.Sprintf("no %s configured for crop %q", e.What, e.CropType)
}

func (e *ConfigurationMissingError) Is(target error) bool {
	return target == ErrConfigurationMissing
}

func NewConfigurationMissingError(cropType crop.CropType, what string) *ConfigurationMissingError {
	return &ConfigurationMissingError{CropType: cropType, What: what}
}
