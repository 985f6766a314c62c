// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the HTTP client and loggers used when none are given

package talklib

import (
	"time"

	"talk-search-api/core/interfaces"
	"talk-search-api/infrastructure/talk"
)

const (
	// DefaultTimeout bounds a single talk API request
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the number of discussions fetched per page
	DefaultPageSize = 100
)

// DefaultHTTPClient creates an HTTP client that does not retry,
// since a failed page is reported rather than refetched
func DefaultHTTPClient(timeout time.Duration) interfaces.HTTPClient {
	return talk.NewHTTPClient(timeout, nil)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

func defaultConfig() Config {
	return Config{
		BaseURL:  talk.DefaultBaseURL,
		PageSize: DefaultPageSize,
		Timeout:  DefaultTimeout,
	}
}
