package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/internal/domain/shared"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
)

// Client fetches wholesale crop price quotes from the external market feed.
// Requests are rate limited and retried with exponential backoff + jitter;
// a circuit breaker keeps a failing upstream from being hammered.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	breaker     *CircuitBreaker
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
	clock       shared.Clock
}

// ClientOptions configures a feed client. Zero values fall back to defaults.
type ClientOptions struct {
	Timeout          time.Duration
	RateLimit        float64
	RateBurst        int
	MaxRetries       int
	BackoffBase      time.Duration
	FailureThreshold int
	ResetTimeout     time.Duration
	Clock            shared.Clock
}

// NewClient creates a feed client for the given base URL
func NewClient(baseURL string, opts ClientOptions) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = 2
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = 5
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.BackoffBase == 0 {
		opts.BackoffBase = defaultBackoffBase
	}
	if opts.FailureThreshold == 0 {
		opts.FailureThreshold = 5
	}
	if opts.ResetTimeout == 0 {
		opts.ResetTimeout = time.Minute
	}
	if opts.Clock == nil {
		opts.Clock = shared.NewRealClock()
	}

	return &Client{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst),
		breaker:     NewCircuitBreaker(opts.FailureThreshold, opts.ResetTimeout, opts.Clock),
		baseURL:     baseURL,
		maxRetries:  opts.MaxRetries,
		backoffBase: opts.BackoffBase,
		clock:       opts.Clock,
	}
}

// FetchQuotes retrieves the current price quotes for all crops the feed
// covers. Quotes with unparseable or non-positive prices are skipped.
func (c *Client) FetchQuotes(ctx context.Context) ([]*pricing.PricePoint, error) {
	var response struct {
		Quotes []struct {
			Crop       string  `json:"crop"`
			PriceUZSKg float64 `json:"price_uzs_kg"`
			QuotedAt   string  `json:"quoted_at"`
		} `json:"quotes"`
	}

	err := c.breaker.Call(func() error {
		return c.request(ctx, "/v1/prices/current", &response)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price quotes: %w", err)
	}

	points := make([]*pricing.PricePoint, 0, len(response.Quotes))
	for _, quote := range response.Quotes {
		if quote.PriceUZSKg <= 0 {
			continue
		}

		recordedAt := c.clock.Now()
		if quote.QuotedAt != "" {
			if t, err := time.Parse(time.RFC3339, quote.QuotedAt); err == nil {
				recordedAt = t.UTC()
			}
		}

		points = append(points, &pricing.PricePoint{
			CropType:   crop.ParseCropType(quote.Crop),
			Price:      quote.PriceUZSKg,
			RecordedAt: recordedAt,
		})
	}

	return points, nil
}

// FetchQuote retrieves the current price quote for a single crop, or
// pricing.ErrPriceUnavailable when the feed has no quote for it.
func (c *Client) FetchQuote(ctx context.Context, cropType crop.CropType) (*pricing.PricePoint, error) {
	var response struct {
		Crop       string  `json:"crop"`
		PriceUZSKg float64 `json:"price_uzs_kg"`
		QuotedAt   string  `json:"quoted_at"`
	}

	path := "/v1/prices/current/" + url.PathEscape(cropType.String())
	err := c.breaker.Call(func() error {
		return c.request(ctx, path, &response)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price quote for %s: %w", cropType, err)
	}

	if response.PriceUZSKg <= 0 {
		return nil, pricing.ErrPriceUnavailable
	}

	recordedAt := c.clock.Now()
	if response.QuotedAt != "" {
		if t, err := time.Parse(time.RFC3339, response.QuotedAt); err == nil {
			recordedAt = t.UTC()
		}
	}

	return &pricing.PricePoint{
		CropType:   cropType,
		Price:      response.PriceUZSKg,
		RecordedAt: recordedAt,
	}, nil
}

// request makes a GET request with rate limiting and exponential backoff retries
func (c *Client) request(ctx context.Context, path string, result interface{}) error {
	requestURL := c.baseURL + path

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Network error - retryable
			lastErr = fmt.Errorf("network error: %w", err)

			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}

			c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("failed to read response: %w", readErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable {
			lastErr = fmt.Errorf("feed unavailable (%d)", resp.StatusCode)

			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}

			// Honor a server-provided Retry-After, otherwise back off with jitter
			backoffDelay := addJitter(c.backoffBase * time.Duration(1<<attempt))
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, err := strconv.Atoi(retryAfter); err == nil {
					backoffDelay = time.Duration(seconds) * time.Second
				}
			}
			c.clock.Sleep(backoffDelay)
			continue
		}

		if resp.StatusCode == http.StatusNotFound {
			return pricing.ErrPriceUnavailable
		}

		if resp.StatusCode >= 400 {
			return fmt.Errorf("feed request failed with status %d: %s", resp.StatusCode, string(respBody))
		}

		if result != nil {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to parse feed response: %w", err)
			}
		}

		return nil
	}

	return fmt.Errorf("feed request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64() // 0.5 to 1.5
	return time.Duration(float64(d) * jitter)
}
