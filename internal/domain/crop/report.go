package crop

import (
	"fmt"
	"time"
)

// CropReport is a single farmer-submitted planting record: what was planted,
// how much of it, and where. Reports are immutable once created.
type CropReport struct {
	id           string
	cropType     CropType
	areaHectares float64
	latitude     float64
	longitude    float64
	plantingDate *time.Time
	createdAt    time.Time
}

// NewCropReport creates a validated CropReport. The crop type is normalized
// through ParseCropType; invalid area or coordinates return a ValidationError.
func NewCropReport(
	id string,
	rawCropType string,
	areaHectares float64,
	latitude float64,
	longitude float64,
	plantingDate *time.Time,
	createdAt time.Time,
) (*CropReport, error) {
	if id == "" {
		return nil, NewValidationError("id", "cannot be empty")
	}
	if areaHectares <= 0 {
		return nil, NewValidationError("area_hectares", fmt.Sprintf("must be positive, got %v", areaHectares))
	}
	if latitude < -90 || latitude > 90 {
		return nil, NewValidationError("latitude", fmt.Sprintf("must be within [-90, 90], got %v", latitude))
	}
	if longitude < -180 || longitude > 180 {
		return nil, NewValidationError("longitude", fmt.Sprintf("must be within [-180, 180], got %v", longitude))
	}
	if createdAt.IsZero() {
		return nil, NewValidationError("created_at", "cannot be zero")
	}

	var dateCopy *time.Time
	if plantingDate != nil {
		d := *plantingDate
		dateCopy = &d
	}

	return &CropReport{
		id:           id,
		cropType:     ParseCropType(rawCropType),
		areaHectares: areaHectares,
		latitude:     latitude,
		longitude:    longitude,
		plantingDate: dateCopy,
		createdAt:    createdAt,
	}, nil
}

func (r *CropReport) ID() string {
	return r.id
}

func (r *CropReport) CropType() CropType {
	return r.cropType
}

func (r *CropReport) AreaHectares() float64 {
	return r.areaHectares
}

func (r *CropReport) Latitude() float64 {
	return r.latitude
}

func (r *CropReport) Longitude() float64 {
	return r.longitude
}

// PlantingDate returns the optional planting date, or nil when the farmer did
// not provide one.
func (r *CropReport) PlantingDate() *time.Time {
	if r.plantingDate == nil {
		return nil
	}
	d := *r.plantingDate
	return &d
}

func (r *CropReport) CreatedAt() time.Time {
	return r.createdAt
}
