package nomics

import (
	"encoding/json"
	"fmt"
	"time"
)

// Response is the result of a single call.
//
// Data holds the decoded JSON document for structured responses. The body
// is returned as text instead for CSV output and for any non-2xx status.
// A rejection by the API is therefore not an error: callers inspect
// StatusCode or Body to tell it apart from CSV.
type Response struct {
	StatusCode int
	Body       string
	Data       any

	structured bool
}

// IsText reports whether the response carries raw text instead of a document
func (r *Response) IsText() bool {
	return !r.structured
}

// IsSuccess reports whether the API answered with a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the body of a structured response into v
func (r *Response) Decode(v any) error {
	if r.IsText() {
		return ErrNotStructured
	}
	if err := json.Unmarshal([]byte(r.Body), v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// TickerOptions are the common query options of the ticker endpoints
type TickerOptions struct {
	IDs      []string `url:"ids,comma,omitempty"`
	Interval []string `url:"interval,comma,omitempty"`
	Convert  string   `url:"convert,omitempty"`
	Status   string   `url:"status,omitempty"`
	Filter   string   `url:"filter,omitempty"`
	Sort     string   `url:"sort,omitempty"`
	Format   string   `url:"format,omitempty"`
}

// HistoryOptions are the common query options of the history endpoints
type HistoryOptions struct {
	Currency string    `url:"currency,omitempty"`
	Exchange string    `url:"exchange,omitempty"`
	Start    time.Time `url:"start,omitempty"`
	End      time.Time `url:"end,omitempty"`
	Convert  string    `url:"convert,omitempty"`
	Format   string    `url:"format,omitempty"`
}

// CandlesOptions are the query options of the candle endpoints
type CandlesOptions struct {
	Interval string    `url:"interval,omitempty"`
	Currency string    `url:"currency,omitempty"`
	Exchange string    `url:"exchange,omitempty"`
	Market   string    `url:"market,omitempty"`
	Base     string    `url:"base,omitempty"`
	Quote    string    `url:"quote,omitempty"`
	Start    time.Time `url:"start,omitempty"`
	End      time.Time `url:"end,omitempty"`
	Format   string    `url:"format,omitempty"`
}

// Candle is one entry of the aggregated candles endpoint.
// Numeric fields are strings on the wire.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      string    `json:"open"`
	High      string    `json:"high"`
	Low       string    `json:"low"`
	Close     string    `json:"close"`
	Volume    string    `json:"volume"`
}

// Ticker is one entry of the currencies ticker endpoint
type Ticker struct {
	ID                string    `json:"id"`
	Currency          string    `json:"currency"`
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	Price             string    `json:"price"`
	PriceDate         time.Time `json:"price_date"`
	PriceTimestamp    time.Time `json:"price_timestamp"`
	CirculatingSupply string    `json:"circulating_supply"`
	MaxSupply         string    `json:"max_supply"`
	MarketCap         string    `json:"market_cap"`
	Rank              string    `json:"rank"`
	High              string    `json:"high"`
	HighTimestamp     time.Time `json:"high_timestamp"`
}
