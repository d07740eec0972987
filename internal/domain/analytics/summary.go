package analytics

import (
	"math"
	"sort"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// CropDistribution is one row of the per-crop breakdown in a Summary.
type CropDistribution struct {
	CropType  crop.CropType
	Count     int
	TotalArea float64
}

// Summary holds the basic descriptive statistics for a report snapshot.
type Summary struct {
	TotalReports     int
	TotalArea        float64
	AverageFieldSize float64
	Distribution     []CropDistribution
}

// Summarize computes totals and the per-crop distribution sorted by total
// area descending (ties by crop type for a stable order). Empty input yields
// a zero-valued summary.
func Summarize(reports []*crop.CropReport) Summary {
	byType := make(map[crop.CropType]*CropDistribution)

	var summary Summary
	for _, report := range reports {
		if report == nil {
			continue
		}
		summary.TotalReports++
		summary.TotalArea += report.AreaHectares()

		dist, ok := byType[report.CropType()]
		if !ok {
			dist = &CropDistribution{CropType: report.CropType()}
			byType[report.CropType()] = dist
		}
		dist.Count++
		dist.TotalArea += report.AreaHectares()
	}

	if summary.TotalReports > 0 {
		summary.AverageFieldSize = summary.TotalArea / float64(summary.TotalReports)
	}

	summary.Distribution = make([]CropDistribution, 0, len(byType))
	for _, dist := range byType {
		summary.Distribution = append(summary.Distribution, *dist)
	}
	sort.Slice(summary.Distribution, func(i, j int) bool {
		a, b := summary.Distribution[i], summary.Distribution[j]
		if a.TotalArea != b.TotalArea {
			return a.TotalArea > b.TotalArea
		}
		return a.CropType < b.CropType
	})

	return summary
}

// ShannonDiversityIndex measures crop diversity over report counts. Zero for
// empty input or a single report; higher values mean a more even spread
// across crop types.
func ShannonDiversityIndex(reports []*crop.CropReport) float64 {
	counts := make(map[crop.CropType]int)
	total := 0
	for _, report := range reports {
		if report == nil {
			continue
		}
		counts[report.CropType()]++
		total++
	}
	if total == 0 {
		return 0
	}

	index := 0.0
	for _, count := range counts {
		p := float64(count) / float64(total)
		index -= p * math.Log(p)
	}
	return index
}

// HerfindahlIndex measures area concentration: the sum of squared per-crop
// area shares. 1.0 means a single crop holds all area; values near 1/n mean
// an even split across n crops.
func HerfindahlIndex(reports []*crop.CropReport) float64 {
	areas := make(map[crop.CropType]float64)
	totalArea := 0.0
	for _, report := range reports {
		if report == nil {
			continue
		}
		areas[report.CropType()] += report.AreaHectares()
		totalArea += report.AreaHectares()
	}
	if totalArea == 0 {
		return 0
	}

	index := 0.0
	for _, area := range areas {
		share := area / totalArea
		index += share * share
	}
	return index
}
