// ABOUTME: Main client for the talk search library
// ABOUTME: Offers board comment search to Go callers without the HTTP API

package talklib

import (
	"context"
	"time"

	"talk-search-api/core/domain"
	"talk-search-api/core/interfaces"
	"talk-search-api/core/search"
	"talk-search-api/infrastructure/talk"
)

// Client is the main entry point for the library
type Client struct {
	searchService *search.SearchService
	config        Config
}

// Config holds the configuration for the client
type Config struct {
	// BaseURL is the talk API root
	BaseURL string

	// HTTPClient performs talk API requests; created from Timeout when nil
	HTTPClient interfaces.HTTPClient

	// Logger receives search diagnostics; discarded when nil
	Logger interfaces.Logger

	// PageSize is the number of discussions per fetch page
	PageSize int

	// Timeout bounds each request of the default HTTP client
	Timeout time.Duration
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(config.Timeout)
	}
	if config.Logger == nil {
		config.Logger = QuietLogger()
	}
	config.PageSize = search.EffectivePageSize(config.PageSize)

	deps := interfaces.Dependencies{
		HTTPClient:  config.HTTPClient,
		Discussions: talk.NewClient(config.HTTPClient, config.BaseURL),
		Logger:      config.Logger,
	}

	return &Client{
		searchService: search.NewSearchService(deps),
		config:        config,
	}, nil
}

// PageSize returns the effective fetch page size
func (c *Client) PageSize() int {
	return c.config.PageSize
}

// SearchBoard searches result pages startPage..endPage (pages of 10) of a board.
// Pages that fail are listed in the result's Failures; the error is reserved
// for invalid input.
func (c *Client) SearchBoard(ctx context.Context, boardID, term string, startPage, endPage int) (*domain.SearchResult, error) {
	result, err := c.searchService.SearchBoard(ctx, boardID, term, startPage, endPage, c.config.PageSize)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
