package persistence

import (
	"time"
)

// CropReportModel represents the crop_reports table
type CropReportModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	CropType     string     `gorm:"column:crop_type;index;not null"`
	AreaHectares float64    `gorm:"column:area_hectares;not null"`
	Latitude     float64    `gorm:"column:latitude;not null"`
	Longitude    float64    `gorm:"column:longitude;not null"`
	PlantingDate *time.Time `gorm:"column:planting_date"`
	CreatedAt    time.Time  `gorm:"column:created_at;index;not null"`
}

func (CropReportModel) TableName() string {
	return "crop_reports"
}

// PricePointModel represents the price_points table
// One row per observed (crop, recorded_at) price quote in UZS per kg.
type PricePointModel struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement"`
	CropType   string    `gorm:"column:crop_type;index;not null"`
	Price      float64   `gorm:"column:price;not null"`
	RecordedAt time.Time `gorm:"column:recorded_at;index;not null"`
}

func (PricePointModel) TableName() string {
	return "price_points"
}

// AllModels lists every model for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&CropReportModel{},
		&PricePointModel{},
	}
}
