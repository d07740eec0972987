package analytics

import (
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// FieldSizeCategory buckets fields by area.
type FieldSizeCategory string

const (
	FieldSizeSmall     FieldSizeCategory = "small"      // < 1 ha
	FieldSizeMedium    FieldSizeCategory = "medium"     // 1-5 ha
	FieldSizeLarge     FieldSizeCategory = "large"      // 5-20 ha
	FieldSizeVeryLarge FieldSizeCategory = "very_large" // >= 20 ha
)

// Category band boundaries in hectares.
const (
	smallFieldMax  = 1.0
	mediumFieldMax = 5.0
	largeFieldMax  = 20.0
)

// CategorizeFieldSize returns the size category for a field area.
func CategorizeFieldSize(areaHectares float64) FieldSizeCategory {
	switch {
	case areaHectares < smallFieldMax:
		return FieldSizeSmall
	case areaHectares < mediumFieldMax:
		return FieldSizeMedium
	case areaHectares < largeFieldMax:
		return FieldSizeLarge
	default:
		return FieldSizeVeryLarge
	}
}

// Efficiency weights per size category. Large fields score best; very large
// ones slightly less, reflecting diminishing returns.
var efficiencyWeights = map[FieldSizeCategory]float64{
	FieldSizeSmall:     0.3,
	FieldSizeMedium:    0.7,
	FieldSizeLarge:     1.0,
	FieldSizeVeryLarge: 0.8,
}

// EfficiencyScore rates a report snapshot 0-100 by how much of it sits in
// efficiently sized fields. Zero for empty input.
func EfficiencyScore(reports []*crop.CropReport) float64 {
	total := 0
	counts := make(map[FieldSizeCategory]int)
	for _, report := range reports {
		if report == nil {
			continue
		}
		counts[CategorizeFieldSize(report.AreaHectares())]++
		total++
	}
	if total == 0 {
		return 0
	}

	score := 0.0
	for category, count := range counts {
		score += float64(count) / float64(total) * efficiencyWeights[category]
	}
	return score * 100
}
