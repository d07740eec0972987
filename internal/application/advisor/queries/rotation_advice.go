package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/agromap-uz/agromap-go/internal/application/common"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/rotation"
)

// RotationAdviceQuery asks which crops should follow the previous planting
// on a field, and whether their sowing windows are open at the given date.
type RotationAdviceQuery struct {
	PreviousCrop string
	AsOf         time.Time
}

// RotationCandidate is one suggested follow-up crop with its calendar data.
type RotationCandidate struct {
	CropType    crop.CropType
	Window      *rotation.PlantingWindow
	InWindowNow bool
}

// RotationAdviceResult is the ordered candidate list.
type RotationAdviceResult struct {
	PreviousCrop crop.CropType
	Candidates   []RotationCandidate
}

// RotationAdviceHandler resolves rotation suggestions from the planner.
type RotationAdviceHandler struct{}

func NewRotationAdviceHandler() *RotationAdviceHandler {
	return &RotationAdviceHandler{}
}

func (h *RotationAdviceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*RotationAdviceQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	asOf := query.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	var previous crop.CropType
	if query.PreviousCrop != "" {
		previous = crop.ParseCropType(query.PreviousCrop)
	}

	result := &RotationAdviceResult{PreviousCrop: previous}
	for _, candidate := range rotation.Suggestions(previous) {
		entry := RotationCandidate{CropType: candidate}
		if window, ok := rotation.WindowFor(candidate); ok {
			w := window
			entry.Window = &w
			entry.InWindowNow = window.Contains(asOf)
		}
		result.Candidates = append(result.Candidates, entry)
	}

	return result, nil
}
