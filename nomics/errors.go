package nomics

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was constructed without an API key
	ErrMissingAPIKey = errors.New("nomics API key is required")
	// ErrUnknownEndpoint indicates a lookup by name found no endpoint
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	// ErrNotStructured indicates a text response was asked to decode
	ErrNotStructured = errors.New("response is not a structured document")
)

// ConfigError represents an invalid client configuration
type ConfigError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid nomics configuration: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransportError represents a failure to complete the HTTP exchange
type TransportError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("nomics request to %q failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a successful response whose body is not valid JSON
type DecodeError struct {
	Endpoint string
	Body     string
	Err      error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %q response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
