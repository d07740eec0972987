package rotation

import (
	"sort"
	"time"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// rotationRules maps a previously planted crop to the crops agronomically
// suited to follow it. Planting the same crop back to back is never
// suggested.
var rotationRules = map[crop.CropType][]crop.CropType{
	crop.CropTypeWheat:  {crop.CropTypeCotton, crop.CropTypePotato},
	crop.CropTypeCotton: {crop.CropTypeWheat},
	crop.CropTypePotato: {crop.CropTypeWheat, crop.CropTypeCotton},
}

// PlantingWindow is the month range in which sowing a crop is considered
// optimal. Windows may wrap the year boundary (e.g. Nov-Feb).
type PlantingWindow struct {
	StartMonth time.Month
	EndMonth   time.Month
}

// Contains reports whether the given date falls inside the window, handling
// windows that span the year boundary.
func (w PlantingWindow) Contains(date time.Time) bool {
	month := date.Month()
	if w.StartMonth > w.EndMonth {
		return month >= w.StartMonth || month <= w.EndMonth
	}
	return month >= w.StartMonth && month <= w.EndMonth
}

var plantingCalendar = map[crop.CropType]PlantingWindow{
	crop.CropTypeWheat:  {StartMonth: time.September, EndMonth: time.November},
	crop.CropTypeCotton: {StartMonth: time.March, EndMonth: time.May},
	crop.CropTypePotato: {StartMonth: time.February, EndMonth: time.April},
}

// Suggestions returns the rotation candidates after the given previous crop,
// in lexical order. An empty previous crop means the field has no history,
// so every crop with rotation rules is a candidate.
func Suggestions(previousCrop crop.CropType) []crop.CropType {
	if previousCrop == "" {
		candidates := make([]crop.CropType, 0, len(rotationRules))
		for cropType := range rotationRules {
			candidates = append(candidates, cropType)
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
		return candidates
	}

	rules, ok := rotationRules[previousCrop]
	if !ok {
		return nil
	}
	suggestions := make([]crop.CropType, len(rules))
	copy(suggestions, rules)
	sort.Slice(suggestions, func(i, j int) bool { return suggestions[i] < suggestions[j] })
	return suggestions
}

// WindowFor returns the optimal planting window for a crop. The second
// return value is false when no calendar entry exists for the crop.
func WindowFor(cropType crop.CropType) (PlantingWindow, bool) {
	window, ok := plantingCalendar[cropType]
	return window, ok
}
