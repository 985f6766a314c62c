// ABOUTME: Response DTOs for board search
// ABOUTME: Carries display-ready comment matches plus the per-page failure tally

package responses

// SearchItemResponse is one matching discussion
type SearchItemResponse struct {
	Title                   string `json:"title" doc:"Discussion title"`
	Excerpt                 string `json:"excerpt" doc:"Latest comment with markdown images, links and HTML removed, truncated"`
	Body                    string `json:"body" doc:"Latest comment body as written"`
	UpdatedAt               string `json:"updatedAt" doc:"Latest comment update time as reported by talk"`
	UpdatedAgo              string `json:"updatedAgo,omitempty" doc:"Update time relative to the response, e.g. '3 hours ago'"`
	URL                     string `json:"url" doc:"Site-relative link to the comment"`
	UserDisplayName         string `json:"userDisplayName"`
	UserProjectURL          string `json:"userProjectUrl" doc:"Site-relative link to the author's project profile"`
	DiscussionUsersCount    int    `json:"discussionUsersCount"`
	DiscussionCommentsCount int    `json:"discussionCommentsCount"`
}

// PageFailureResponse describes a fetch page that could not be retrieved
type PageFailureResponse struct {
	Page  int    `json:"page"`
	Error string `json:"error"`
}

// SearchResponse is the result of a board search
type SearchResponse struct {
	BoardID        string                `json:"boardId"`
	Term           string                `json:"term"`
	PageSize       int                   `json:"pageSize" doc:"Effective fetch page size"`
	RequestedPages []int                 `json:"requestedPages" doc:"Fetch pages that were requested"`
	SucceededPages int                   `json:"succeededPages" doc:"Number of fetch pages that were retrieved"`
	FailureCount   int                   `json:"failureCount" doc:"Number of fetch pages that failed"`
	Partial        bool                  `json:"partial" doc:"Some, but not all, fetch pages failed"`
	Failures       []PageFailureResponse `json:"failures"`
	TotalItems     int                   `json:"totalItems"`
	Items          []SearchItemResponse  `json:"items"`
}
