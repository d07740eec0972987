package supply

import (
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// CropSupplyAggregate is the per-crop supply statistic derived from the
// report snapshot. Aggregates are ephemeral: recomputed on every query,
// never persisted.
type CropSupplyAggregate struct {
	CropType         crop.CropType
	TotalPlantedArea float64
	NumberOfFarms    int
	AverageFieldSize float64
}

// ComputeSupplyAggregates groups a report snapshot into one aggregate per
// distinct crop type. Grouping uses the already-normalized crop type of each
// report. Buckets only exist when at least one report contributed, so
// NumberOfFarms is always >= 1 for every emitted aggregate and the average
// never divides by zero. Empty input yields an empty map.
//
// Reports with non-positive area should never reach this function (upstream
// validation owns that invariant), but if one does it is skipped rather than
// aborting the batch.
func ComputeSupplyAggregates(reports []*crop.CropReport) map[crop.CropType]CropSupplyAggregate {
	aggregates := make(map[crop.CropType]CropSupplyAggregate)

	for _, report := range reports {
		if report == nil || report.AreaHectares() <= 0 {
			continue
		}

		agg := aggregates[report.CropType()]
		agg.CropType = report.CropType()
		agg.TotalPlantedArea += report.AreaHectares()
		agg.NumberOfFarms++
		aggregates[report.CropType()] = agg
	}

	for cropType, agg := range aggregates {
		agg.AverageFieldSize = agg.TotalPlantedArea / float64(agg.NumberOfFarms)
		aggregates[cropType] = agg
	}

	return aggregates
}
