// ABOUTME: Search domain models for talk board comment search
// ABOUTME: Defines the projected result items and the aggregated outcome of a board search

package domain

import (
	apperrors "talk-search-api/core/errors"
)

// SearchResultItem is a display-ready projection of a matching discussion.
// Items are never mutated after creation.
type SearchResultItem struct {
	// Title is the discussion title
	Title string

	// Body is the latest comment body, the source text for excerpts
	Body string

	// UpdatedAt is the latest comment's update timestamp as sent by the remote
	UpdatedAt string

	// URL is the site-relative link to the comment within its discussion
	URL string

	// UserDisplayName is the comment author's display name
	UserDisplayName string

	// UserProjectURL is the site-relative link to the author's project profile
	UserProjectURL string

	// DiscussionUsersCount is the number of participants
	DiscussionUsersCount int

	// DiscussionCommentsCount is the number of comments
	DiscussionCommentsCount int
}

// SearchResult is the outcome of one board search.
// Items are grouped by the completion order of the page fetches.
type SearchResult struct {
	// Items is the flattened list of matches from successful pages
	Items []SearchResultItem

	// RequestedPages lists the fetch-page indices that were requested, ascending
	RequestedPages []int

	// PageSize is the effective fetch page size
	PageSize int

	// Failures holds one entry per fetch page that could not be retrieved
	Failures []*apperrors.PageFetchError
}

// FailureCount returns the number of fetch pages that failed
func (r *SearchResult) FailureCount() int {
	return len(r.Failures)
}

// SucceededPages returns the number of fetch pages that were retrieved
func (r *SearchResult) SucceededPages() int {
	return len(r.RequestedPages) - len(r.Failures)
}

// Partial reports whether some, but not all, pages failed
func (r *SearchResult) Partial() bool {
	return len(r.Failures) > 0 && len(r.Failures) < len(r.RequestedPages)
}
