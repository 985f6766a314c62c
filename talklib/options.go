// ABOUTME: Configuration options for the talk search library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package talklib

import (
	"time"

	"talk-search-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithBaseURL sets the talk API root
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "base URL cannot be empty")
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithPageSize sets the discussions fetched per page, clamped to 10..100
func WithPageSize(size int) Option {
	return func(c *Config) error {
		c.PageSize = size
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}
