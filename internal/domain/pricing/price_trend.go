package pricing

// PriceTrend represents the short-term direction of a crop's market price.
type PriceTrend string

const (
	PriceTrendIncreasing PriceTrend = "increasing"
	PriceTrendDecreasing PriceTrend = "decreasing"
	PriceTrendStable     PriceTrend = "stable"
)

// ParsePriceTrend converts a string to a PriceTrend, defaulting to stable for
// anything unrecognized.
func ParsePriceTrend(s string) PriceTrend {
	switch s {
	case "increasing":
		return PriceTrendIncreasing
	case "decreasing":
		return PriceTrendDecreasing
	case "stable":
		return PriceTrendStable
	default:
		return PriceTrendStable
	}
}

func (t PriceTrend) String() string {
	return string(t)
}

const (
	// shortWindow and longWindow are the moving-average windows used for
	// trend detection.
	shortWindow = 3
	longWindow  = 7

	// trendDeadBand is the relative band around the long moving average
	// inside which the trend counts as stable.
	trendDeadBand = 0.05

	// minSeriesLength is the minimum number of price points needed before a
	// trend other than stable can be reported.
	minSeriesLength = 5
)

// TrendFromSeries derives a trend from a chronological price series (oldest
// first) by comparing a short trailing moving average against a long one.
// Short MA more than 5% above the long MA reads as increasing, more than 5%
// below as decreasing, anything in between as stable. Series shorter than
// five points are reported as stable.
func TrendFromSeries(prices []float64) PriceTrend {
	if len(prices) < minSeriesLength {
		return PriceTrendStable
	}

	shortMA := trailingAverage(prices, shortWindow)
	longMA := trailingAverage(prices, longWindow)

	switch {
	case shortMA > longMA*(1+trendDeadBand):
		return PriceTrendIncreasing
	case shortMA < longMA*(1-trendDeadBand):
		return PriceTrendDecreasing
	default:
		return PriceTrendStable
	}
}

func trailingAverage(prices []float64, window int) float64 {
	if window > len(prices) {
		window = len(prices)
	}
	sum := 0.0
	for _, p := range prices[len(prices)-window:] {
		sum += p
	}
	return sum / float64(window)
}
