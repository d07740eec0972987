package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agromap-uz/agromap-go/internal/adapters/metrics"
	"github.com/agromap-uz/agromap-go/internal/application/common"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

// RankOpportunitiesQuery produces the ranked planting recommendation list
// over the current report snapshot. With no explicit CropTypes it ranks the
// union of the known crop set and every reported crop type, so crops nobody
// has planted yet still surface as opportunities.
type RankOpportunitiesQuery struct {
	CropTypes []crop.CropType
}

// RankOpportunitiesHandler orchestrates snapshot, prices and ranking.
type RankOpportunitiesHandler struct {
	reports crop.CropReportRepository
	prices  pricing.PriceReference
	config  supply.ScoringConfig
}

func NewRankOpportunitiesHandler(
	reports crop.CropReportRepository,
	prices pricing.PriceReference,
	config supply.ScoringConfig,
) *RankOpportunitiesHandler {
	return &RankOpportunitiesHandler{reports: reports, prices: prices, config: config}
}

func (h *RankOpportunitiesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*RankOpportunitiesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	started := time.Now()

	snapshot, err := h.reports.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load crop reports: %w", err)
	}

	aggregates := supply.ComputeSupplyAggregates(snapshot)
	cropTypes := query.CropTypes
	if len(cropTypes) == 0 {
		cropTypes = cropUniverse(aggregates)
	}

	// Crops without a resolvable price are left out of the map so the domain
	// ranking reports them as per-crop configuration failures.
	priceReferences := make(map[crop.CropType]pricing.PriceInfo, len(cropTypes))
	for _, cropType := range cropTypes {
		priceInfo, err := h.prices.CurrentPrice(ctx, cropType)
		if err != nil {
			if errors.Is(err, pricing.ErrPriceUnavailable) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve price for %s: %w", cropType, err)
		}
		priceReferences[cropType] = priceInfo
	}

	ranking := supply.RankPlantingOpportunities(cropTypes, aggregates, priceReferences, h.config)

	for _, failure := range ranking.Failures {
		recordFailure(failure.CropType, failure.Err)
	}
	metrics.RecordRankingComputed(len(ranking.Recommendations), time.Since(started).Seconds())

	common.LoggerFromContext(ctx).Log("INFO", "planting opportunities ranked", map[string]interface{}{
		"crops_ranked": len(ranking.Recommendations),
		"crops_failed": len(ranking.Failures),
	})

	return &ranking, nil
}
