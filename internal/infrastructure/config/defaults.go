package config

import (
	"time"

	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

// Baseline calibration for the Uzbekistan deployment. Capacities are the
// expected healthy planted area in hectares across the observed regions;
// prices are current wholesale quotes in UZS per kilogram.
var (
	defaultCapacities = map[string]float64{
		"wheat":  50000,
		"cotton": 30000,
		"potato": 20000,
	}

	defaultBaselinePrices = map[string]CropPriceConfig{
		"wheat":  {Price: 2720, Trend: "stable"},
		"cotton": {Price: 8900, Trend: "increasing"},
		"potato": {Price: 3400, Trend: "stable"},
		"corn":   {Price: 3100, Trend: "stable"},
		"rice":   {Price: 4950, Trend: "increasing"},
	}
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "agromap"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "agromap"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "agromap.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Scoring defaults
	if cfg.Scoring.Capacities == nil {
		cfg.Scoring.Capacities = defaultCapacities
	}
	if cfg.Scoring.SaturationLowMax == 0 {
		cfg.Scoring.SaturationLowMax = supply.DefaultSaturationLowMax
	}
	if cfg.Scoring.SaturationHighMin == 0 {
		cfg.Scoring.SaturationHighMin = supply.DefaultSaturationHighMin
	}

	// Price defaults
	if cfg.Prices.Baseline == nil {
		cfg.Prices.Baseline = defaultBaselinePrices
	}

	// Feed defaults
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 30 * time.Second
	}
	if cfg.Feed.PollInterval == 0 {
		cfg.Feed.PollInterval = 6 * time.Hour
	}
	if cfg.Feed.RateLimit.Requests == 0 {
		cfg.Feed.RateLimit.Requests = 2
	}
	if cfg.Feed.RateLimit.Burst == 0 {
		cfg.Feed.RateLimit.Burst = 5
	}
	if cfg.Feed.Retry.MaxAttempts == 0 {
		cfg.Feed.Retry.MaxAttempts = 3
	}
	if cfg.Feed.Retry.BackoffBase == 0 {
		cfg.Feed.Retry.BackoffBase = 1 * time.Second
	}
	if cfg.Feed.CircuitBreaker.FailureThreshold == 0 {
		cfg.Feed.CircuitBreaker.FailureThreshold = 5
	}
	if cfg.Feed.CircuitBreaker.ResetTimeout == 0 {
		cfg.Feed.CircuitBreaker.ResetTimeout = 1 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Metrics defaults
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
