package nomics

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the documented root of the Nomics v1 API.
const DefaultBaseURL = "https://api.nomics.com/v1/"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL overrides the API root. The value is joined to endpoint
// paths as-is, so it should normally end with a slash.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
// Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
