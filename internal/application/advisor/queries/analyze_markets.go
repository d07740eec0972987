package queries

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/agromap-uz/agromap-go/internal/adapters/metrics"
	"github.com/agromap-uz/agromap-go/internal/application/common"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

// AnalyzeMarketsQuery computes the per-crop market analysis envelope over the
// current report snapshot. With no explicit CropTypes it covers the union of
// the known crop set and every crop type present in reports.
type AnalyzeMarketsQuery struct {
	CropTypes []crop.CropType
}

// AnalyzeMarketsHandler is a thin orchestrator: it fetches the report
// snapshot and price references, then delegates aggregation, scoring and the
// decision table to the supply domain.
type AnalyzeMarketsHandler struct {
	reports crop.CropReportRepository
	prices  pricing.PriceReference
	config  supply.ScoringConfig
}

func NewAnalyzeMarketsHandler(
	reports crop.CropReportRepository,
	prices pricing.PriceReference,
	config supply.ScoringConfig,
) *AnalyzeMarketsHandler {
	return &AnalyzeMarketsHandler{reports: reports, prices: prices, config: config}
}

func (h *AnalyzeMarketsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*AnalyzeMarketsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	snapshot, err := h.reports.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load crop reports: %w", err)
	}

	aggregates := supply.ComputeSupplyAggregates(snapshot)
	cropTypes := query.CropTypes
	if len(cropTypes) == 0 {
		cropTypes = cropUniverse(aggregates)
	}

	report := &supply.MarketReport{}
	for _, cropType := range cropTypes {
		started := time.Now()

		priceInfo, err := h.currentPrice(ctx, cropType)
		if err != nil {
			report.Failures = append(report.Failures, supply.CropFailure{CropType: cropType, Err: err})
			recordFailure(cropType, err)
			continue
		}

		analysis, err := supply.AnalyzeMarket(cropType, aggregates[cropType], priceInfo, h.config)
		if err != nil {
			report.Failures = append(report.Failures, supply.CropFailure{CropType: cropType, Err: err})
			recordFailure(cropType, err)
			continue
		}

		report.Analyses = append(report.Analyses, *analysis)
		metrics.RecordAnalysisComputed(
			cropType.String(),
			analysis.Recommendation.String(),
			time.Since(started).Seconds(),
		)
	}

	common.LoggerFromContext(ctx).Log("INFO", "market analysis computed", map[string]interface{}{
		"crops_analyzed": len(report.Analyses),
		"crops_failed":   len(report.Failures),
		"reports_in":     len(snapshot),
	})

	return report, nil
}

// currentPrice resolves the price reference, mapping an unavailable price to
// the per-crop ConfigurationMissing condition the envelope collects.
func (h *AnalyzeMarketsHandler) currentPrice(ctx context.Context, cropType crop.CropType) (pricing.PriceInfo, error) {
	priceInfo, err := h.prices.CurrentPrice(ctx, cropType)
	if err != nil {
		if errors.Is(err, pricing.ErrPriceUnavailable) {
			return pricing.PriceInfo{}, supply.NewConfigurationMissingError(cropType, "price reference")
		}
		return pricing.PriceInfo{}, err
	}
	return priceInfo, nil
}

// cropUniverse returns the known crop set plus any reported crop types
// (including the "other" bucket), in lexical order.
func cropUniverse(aggregates map[crop.CropType]supply.CropSupplyAggregate) []crop.CropType {
	seen := make(map[crop.CropType]bool)
	var universe []crop.CropType
	for _, cropType := range crop.KnownCropTypes() {
		seen[cropType] = true
		universe = append(universe, cropType)
	}
	for cropType := range aggregates {
		if !seen[cropType] {
			universe = append(universe, cropType)
		}
	}
	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })
	return universe
}

func recordFailure(cropType crop.CropType, err error) {
	var missing *supply.ConfigurationMissingError
	if errors.As(err, &missing) {
		metrics.RecordConfigurationGap(cropType.String(), missing.What)
	}
}
