package config

import "time"

// FeedConfig holds the external price feed client configuration
type FeedConfig struct {
	// Enabled controls whether the feed poller runs at all
	Enabled bool `mapstructure:"enabled"`

	// BaseURL of the market price feed
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout per feed request
	Timeout time.Duration `mapstructure:"timeout"`

	// PollInterval between feed fetches when polling
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// RateLimit settings for outbound feed requests
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Retry settings for failed feed requests
	Retry RetryConfig `mapstructure:"retry"`

	// CircuitBreaker settings protecting the feed from hammering a
	// failing upstream
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests per second
	Requests float64 `mapstructure:"requests" validate:"omitempty,gt=0"`

	// Burst capacity
	Burst int `mapstructure:"burst" validate:"omitempty,min=1"`
}

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"omitempty,min=1"`
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}

// CircuitBreakerConfig holds circuit breaker configuration
type CircuitBreakerConfig struct {
	// FailureThreshold is the consecutive failure count that opens the breaker
	FailureThreshold int `mapstructure:"failure_threshold" validate:"omitempty,min=1"`

	// ResetTimeout is how long the breaker stays open before a trial request
	ResetTimeout time.Duration `mapstructure:"reset_timeout"`
}
