// ABOUTME: Discussion domain models mirroring the remote talk board listing
// ABOUTME: Read-only records as returned by one fetch page of the discussions endpoint

package domain

// Discussion is one entry of a board's discussion listing.
// The listing only exposes the latest comment of each discussion.
type Discussion struct {
	// Title is the discussion title
	Title string

	// BoardID identifies the board the discussion belongs to
	BoardID string

	// ProjectSlug is the owning project's slug, e.g. "owner/project"
	ProjectSlug string

	// LatestComment is the most recent comment in the discussion
	LatestComment Comment
}

// Comment is the latest comment of a discussion
type Comment struct {
	ID                      string
	DiscussionID            string
	Body                    string
	UpdatedAt               string
	UserDisplayName         string
	UserLogin               string
	ProjectSlug             string
	BoardID                 string
	DiscussionUsersCount    int
	DiscussionCommentsCount int
}

// DiscussionPage is the decoded response for a single fetch page
type DiscussionPage struct {
	// Page is the fetch-page index that was requested
	Page int

	// PageSize is the page size used for the request
	PageSize int

	// Discussions preserves the remote ordering
	Discussions []Discussion
}
