package nomics

import (
	"context"
	"fmt"
	"strings"
)

// Endpoint describes one remote operation
type Endpoint struct {
	Name    string
	Path    string
	Summary string
	// Paid marks endpoints documented as paid-plan only. It is not enforced.
	Paid bool
}

var endpoints = []Endpoint{
	// Currencies
	{Name: "currencies-ticker", Path: "currencies/ticker", Summary: "Price, volume, market cap and rank for all currencies across standard intervals"},
	{Name: "currencies", Path: "currencies", Summary: "All supported currencies and their metadata"},

	// Markets
	{Name: "market", Path: "market", Summary: "Supported exchanges and markets with base and quote currency identifiers"},
	{Name: "market-cap-history", Path: "market-cap/history", Summary: "Total market cap for all cryptoassets over a time range"},

	// Volume
	{Name: "volume-history", Path: "volume/history", Summary: "Total USD volume for all cryptoassets over a time range"},

	// Exchange rates
	{Name: "exchange-rates", Path: "exchange-rates", Summary: "Current rates used to convert market prices into USD"},
	{Name: "exchange-rates-history", Path: "exchange-rates/history", Summary: "Exchange rates for every point in a time range (currency and start required)"},

	// Paid plans
	{Name: "global-ticker", Path: "global-ticker", Summary: "Globally aggregated market cap and volume over standard intervals", Paid: true},
	{Name: "currency-highlights", Path: "currencies/highlights", Summary: "Aggregate statistics for a currency over an interval (currency required)", Paid: true},
	{Name: "supply-history", Path: "supplies/history", Summary: "Daily supply history for a currency", Paid: true},
	{Name: "exchange-highlights", Path: "exchanges/highlights", Summary: "Aggregate statistics for an exchange over an interval", Paid: true},
	{Name: "exchanges-ticker", Path: "exchanges/ticker", Summary: "Integration metadata and volume intervals for exchanges", Paid: true},
	{Name: "exchanges-volume-history", Path: "exchanges/volume/history", Summary: "Total USD volume of an exchange over a time range", Paid: true},
	{Name: "exchanges", Path: "exchanges", Summary: "All supported exchanges and their metadata", Paid: true},
	{Name: "market-highlights", Path: "exchange-markets/highlights", Summary: "Aggregate statistics for a pair over an interval", Paid: true},
	{Name: "exchange-markets-ticker", Path: "exchange-markets/ticker", Summary: "Metadata and financial data for individual exchange markets", Paid: true},
	{Name: "candles", Path: "candles", Summary: "Aggregated OHLCV candles for a currency, in USD", Paid: true},
	{Name: "exchange-candles", Path: "exchange-candles", Summary: "Raw OHLCV candles for a single exchange market", Paid: true},
	{Name: "markets-candles", Path: "markets/candles", Summary: "OHLCV candles for an aggregated base/quote pair", Paid: true},
	{Name: "trades", Path: "trades", Summary: "Normalized individual trades for an exchange market", Paid: true},
	{Name: "orders-snapshot", Path: "orders/snapshot", Summary: "Most recent order book snapshot for an exchange market", Paid: true},
	{Name: "orders-batches", Path: "orders/batches", Summary: "Order book batches for an exchange market", Paid: true},
	{Name: "currencies-predictions-ticker", Path: "currencies/predictions/ticker", Summary: "Current price predictions for currencies", Paid: true},
	{Name: "currencies-predictions-history", Path: "currencies/predictions/history", Summary: "Historical price predictions for a currency", Paid: true},
}

// Endpoints returns a copy of the endpoint table in documentation order
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}

// LookupEndpoint finds an endpoint by name or by path
func LookupEndpoint(name string) (Endpoint, error) {
	name = strings.Trim(strings.TrimSpace(name), "/")
	for _, e := range endpoints {
		if strings.EqualFold(e.Name, name) || e.Path == name {
			return e, nil
		}
	}
	return Endpoint{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
}

// CurrenciesTicker returns price, volume, market cap and rank for currencies
func (c *Client) CurrenciesTicker(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "currencies-ticker", params)
}

// CurrenciesMetadata returns all supported currencies and their metadata
func (c *Client) CurrenciesMetadata(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "currencies", params)
}

// Market returns the supported exchanges and markets
func (c *Client) Market(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "market", params)
}

// MarketCapHistory returns total market cap over a time range
func (c *Client) MarketCapHistory(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "market-cap-history", params)
}

// VolumeHistory returns total USD volume over a time range
func (c *Client) VolumeHistory(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "volume-history", params)
}

// ExchangeRates returns the rates used to convert market prices into USD
func (c *Client) ExchangeRates(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchange-rates", params)
}

// ExchangeRatesHistory returns rates over a time range.
// The API requires currency and start.
func (c *Client) ExchangeRatesHistory(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchange-rates-history", params)
}

// GlobalTicker returns globally aggregated market cap and volume
func (c *Client) GlobalTicker(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "global-ticker", params)
}

// CurrencyHighlights returns aggregate statistics for a currency.
// The API requires currency.
func (c *Client) CurrencyHighlights(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "currency-highlights", params)
}

// SupplyHistory returns daily supply history for a currency
func (c *Client) SupplyHistory(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "supply-history", params)
}

// ExchangeHighlights returns aggregate statistics for an exchange
func (c *Client) ExchangeHighlights(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchange-highlights", params)
}

// ExchangesTicker returns exchange metadata and volume intervals
func (c *Client) ExchangesTicker(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchanges-ticker", params)
}

// ExchangesVolumeHistory returns the USD volume of an exchange over a time range
func (c *Client) ExchangesVolumeHistory(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchanges-volume-history", params)
}

// ExchangesMetadata returns all supported exchanges and their metadata
func (c *Client) ExchangesMetadata(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchanges", params)
}

// MarketHighlights returns aggregate statistics for a pair
func (c *Client) MarketHighlights(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "market-highlights", params)
}

// ExchangeMarketsTicker returns data for individual exchange markets
func (c *Client) ExchangeMarketsTicker(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchange-markets-ticker", params)
}

// Candles returns aggregated OHLCV candles for a currency.
//
// 1d candles have no range limit. 1h candles cover the past 30 days in a
// single request and older data one day at a time.
func (c *Client) Candles(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "candles", params)
}

// ExchangeCandles returns raw OHLCV candles for one exchange market
func (c *Client) ExchangeCandles(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "exchange-candles", params)
}

// MarketsCandles returns OHLCV candles for an aggregated pair
func (c *Client) MarketsCandles(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "markets-candles", params)
}

// Trades returns normalized trades for an exchange market
func (c *Client) Trades(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "trades", params)
}

// OrdersSnapshot returns the most recent order book snapshot. The result is
// empty if no snapshot exists within 24 hours before the given timestamp.
func (c *Client) OrdersSnapshot(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "orders-snapshot", params)
}

// OrdersBatches returns order book batches for an exchange market
func (c *Client) OrdersBatches(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "orders-batches", params)
}

// CurrenciesPredictionsTicker returns current price predictions
func (c *Client) CurrenciesPredictionsTicker(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "currencies-predictions-ticker", params)
}

// CurrenciesPredictionsHistory returns historical price predictions for a currency
func (c *Client) CurrenciesPredictionsHistory(ctx context.Context, params Params) (*Response, error) {
	return c.CallEndpoint(ctx, "currencies-predictions-history", params)
}
