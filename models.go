package marketcache

import (
	"strconv"
	"strings"
	"time"
)

// Symbol is a normalized ticker symbol.
type Symbol string

// NormalizeSymbol trims and upper-cases s. Normalizing twice is the same as
// normalizing once.
func NormalizeSymbol(s string) Symbol {
	return Symbol(strings.ToUpper(strings.TrimSpace(s)))
}

func (s Symbol) String() string { return string(s) }

// HistoryRange is a normalized chart range token.
type HistoryRange string

const (
	Range1D HistoryRange = "1D"
	Range1M HistoryRange = "1M"
	Range6M HistoryRange = "6M"
	Range1Y HistoryRange = "1Y"

	DefaultHistoryRange = Range1M
)

// NormalizeRange trims and upper-cases r; an empty token means
// DefaultHistoryRange. Tokens other than the known ones pass through to the
// remote client as is.
func NormalizeRange(r string) HistoryRange {
	r = strings.ToUpper(strings.TrimSpace(r))
	if r == "" {
		return DefaultHistoryRange
	}
	return HistoryRange(r)
}

// HistoryKey identifies one price history series.
type HistoryKey struct {
	Symbol Symbol
	Range  HistoryRange
}

// NewHistoryKey normalizes symbol and rng into a key.
func NewHistoryKey(symbol, rng string) HistoryKey {
	return HistoryKey{Symbol: NormalizeSymbol(symbol), Range: NormalizeRange(rng)}
}

func (k HistoryKey) String() string { return string(k.Symbol) + ":" + string(k.Range) }

// OutlookKey identifies one outlook. TimeframeDays is zero when the request
// did not specify a timeframe.
type OutlookKey struct {
	Symbol        Symbol
	TimeframeDays int
}

// NewOutlookKey normalizes symbol; a non-positive timeframe becomes zero.
func NewOutlookKey(symbol string, timeframeDays int) OutlookKey {
	if timeframeDays < 0 {
		timeframeDays = 0
	}
	return OutlookKey{Symbol: NormalizeSymbol(symbol), TimeframeDays: timeframeDays}
}

func (k OutlookKey) String() string {
	if k.TimeframeDays == 0 {
		return string(k.Symbol)
	}
	return string(k.Symbol) + ":" + strconv.Itoa(k.TimeframeDays) + "d"
}

// NormalizeQuestion trims and lower-cases question text. The result is the
// whole cache identity of an AI response.
func NormalizeQuestion(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// TickerSnapshot is the current quote for one symbol.
type TickerSnapshot struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	High52W       float64 `json:"high_52w"`
	Low52W        float64 `json:"low_52w"`
	Currency      string  `json:"currency"`
}

// PricePoint is one closing price.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// History is a price series in ascending date order.
type History []PricePoint

// Latest returns the most recent point.
func (h History) Latest() (PricePoint, bool) {
	if len(h) == 0 {
		return PricePoint{}, false
	}
	latest := h[0]
	for _, p := range h[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, true
}

// AIRequest is a question for the AI service. Only Question takes part in
// cache identity; the other fields shape the remote call.
type AIRequest struct {
	Question      string `json:"question"`
	Symbol        string `json:"symbol,omitempty"`
	TimeframeDays int    `json:"timeframe_days,omitempty"`
	Verbose       bool   `json:"verbose"`
}

// ResponseSection is one titled part of a structured answer.
type ResponseSection struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Items []string `json:"items,omitempty"`
}

// StructuredResponse is an AI answer.
type StructuredResponse struct {
	Question    string            `json:"question"`
	Summary     string            `json:"summary"`
	Sections    []ResponseSection `json:"sections"`
	Disclaimer  string            `json:"disclaimer,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// Outlook summarizes the expected behaviour of a symbol over a timeframe.
type Outlook struct {
	Symbol              string   `json:"symbol"`
	TimeframeDays       int      `json:"timeframe_days,omitempty"`
	SentimentSummary    string   `json:"sentiment_summary"`
	HistoricalHitRate   float64  `json:"historical_hit_rate"`
	TypicalRangePercent float64  `json:"typical_range_percent"`
	VolatilityLabel     string   `json:"volatility_label"`
	KeyDrivers          []string `json:"key_drivers"`
}

// NewsItem is one headline.
type NewsItem struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
