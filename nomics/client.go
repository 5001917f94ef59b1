package nomics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Client represents a Nomics API client
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Nomics client.
// The base URL is not checked here; a bad one surfaces on the first call.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ConfigError{Field: "api_key", Err: ErrMissingAPIKey}
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	switch {
	case httpClient == nil:
		httpClient = &http.Client{Timeout: options.timeout}
	case options.timeout > 0:
		custom := *httpClient
		custom.Timeout = options.timeout
		httpClient = &custom
	}

	return &Client{
		baseURL:    options.baseURL,
		apiKey:     apiKey,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs a GET request against baseURL+endpoint with the API key
// injected into params.
//
// A non-2xx status or format=csv yields the raw body as text. Otherwise the
// body is decoded as JSON into Response.Data.
func (c *Client) Call(ctx context.Context, endpoint string, params Params) (*Response, error) {
	values := params.withKey(c.apiKey)

	requestURL := c.baseURL + endpoint
	if encoded := values.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("format", values.Get(formatParam)).
		Int("params", len(values)-1).
		Msg("Making Nomics API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Nomics API rejected request")
		return result, nil
	}

	if values.Get(formatParam) == FormatCSV {
		return result, nil
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Body: result.Body, Err: err}
	}
	result.Data = data
	result.structured = true

	return result, nil
}

// CallEndpoint dispatches to the endpoint registered under name
func (c *Client) CallEndpoint(ctx context.Context, name string, params Params) (*Response, error) {
	endpoint, err := LookupEndpoint(name)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, endpoint.Path, params)
}
