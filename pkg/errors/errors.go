// Package errors defines common error types used throughout the Mention API client.
package errors

import "fmt"

// ValidationError indicates that a request field failed normalization before
// any network activity took place. The caller must fix the input and rebuild.
type ValidationError struct {
	// Field is the wire name of the field that failed validation
	Field string
	// Value is the rejected input value
	Value string
	// Message contains the detailed error message
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error in field %s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error in field %s: %s", e.Field, e.Message)
}

// ConfigError indicates a problem with the client configuration.
type ConfigError struct {
	// Field contains the name of the configuration field that caused the error
	Field string
	// Message contains the detailed error message
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// APIError represents a non-2xx response from the Mention API.
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Body contains the raw response body (if available)
	Body string
	// Message contains an optional summary of the failure
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.Body != "" {
		return fmt.Sprintf("mention API error (status %d): %s: %s", e.StatusCode, msg, e.Body)
	}
	return fmt.Sprintf("mention API error (status %d): %s", e.StatusCode, msg)
}

// ClientError indicates a problem with the HTTP client operations.
type ClientError struct {
	// Operation describes what the client was trying to do
	Operation string
	// Message contains the detailed error message
	Message string
	// Err contains the underlying error if available
	Err error
}

func (e *ClientError) Error() string {
	if e.Err != nil && e.Operation == "" && e.Message == "" {
		return e.Err.Error()
	}
	if e.Operation != "" && e.Err != nil {
		return fmt.Sprintf("client error during %s: %v", e.Operation, e.Err)
	}
	if e.Operation != "" && e.Message != "" {
		return fmt.Sprintf("client error during %s: %s", e.Operation, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("client error: %s", e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("client error: %v", e.Err)
	}
	return "client error"
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// ParseError indicates a problem parsing the API response.
type ParseError struct {
	// Operation is the name of the API operation where parsing failed
	Operation string
	// Err contains the underlying error if available
	Err error
}

func (e *ParseError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("parse error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
