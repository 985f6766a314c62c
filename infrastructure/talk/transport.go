// ABOUTME: HTTP transport construction for talk API clients
// ABOUTME: Builds a single-attempt client so a failed page is reported, never refetched

package talk

import (
	"net/http"
	"time"

	"talk-search-api/infrastructure/http/standard"
)

// NewHTTPClient creates the HTTP client talk searches run on.
// It makes exactly one attempt per page. A nil transport uses http.DefaultTransport.
func NewHTTPClient(timeout time.Duration, transport http.RoundTripper) *standard.StandardHTTPClient {
	return standard.NewStandardHTTPClient(timeout,
		standard.WithMaxAttempts(1),
		standard.WithTransport(transport),
	)
}
