// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"talk-search-api/core/domain"
)

// DiscussionSource retrieves one page of a board's discussion listing.
// Implementations must be safe for concurrent use.
type DiscussionSource interface {
	FetchDiscussions(ctx context.Context, boardID string, page, pageSize int) (*domain.DiscussionPage, error)
}

// BoardSearchService searches the comments of a talk board
type BoardSearchService interface {
	SearchBoard(ctx context.Context, boardID, term string, startPage, endPage, pageSize int) (*domain.SearchResult, error)
}

// ProjectLinkService resolves external links for project subjects
type ProjectLinkService interface {
	Links() []domain.ProjectLink
	Lookup(path string) (domain.ProjectLink, bool)
	BuildURL(path, value string) (string, error)
}
