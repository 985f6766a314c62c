// ABOUTME: Talk API client fetching one page of a board's discussion listing
// ABOUTME: Builds the versioned JSON API request and decodes discussions into domain records

package talk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"talk-search-api/core/domain"
	apperrors "talk-search-api/core/errors"
	"talk-search-api/core/interfaces"
)

const (
	// DefaultBaseURL is the public talk API host
	DefaultBaseURL = "https://talk.zooniverse.org"

	apiName     = "talk"
	acceptValue = "application/vnd.api+json; version=1"
)

// Client implements interfaces.DiscussionSource on top of an HTTPClient
type Client struct {
	httpClient interfaces.HTTPClient
	baseURL    string
}

// NewClient creates a talk API client. An empty baseURL uses DefaultBaseURL.
func NewClient(httpClient interfaces.HTTPClient, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// DiscussionsURL returns the listing URL for one fetch page
func (c *Client) DiscussionsURL(boardID string, page, pageSize int) string {
	q := url.Values{}
	q.Set("http_cache", "true")
	q.Set("board_id", boardID)
	q.Set("page_size", strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	return c.baseURL + "/discussions?" + q.Encode()
}

// FetchDiscussions retrieves and decodes one page of the board's discussions
func (c *Client) FetchDiscussions(ctx context.Context, boardID string, page, pageSize int) (*domain.DiscussionPage, error) {
	resp, err := c.httpClient.GetWithHeaders(ctx, c.DiscussionsURL(boardID, page, pageSize), map[string]string{
		"Accept":       acceptValue,
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discussions: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &apperrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        apiName,
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	discussions, err := decodeDiscussions(bodyBytes)
	if err != nil {
		return nil, err
	}

	return &domain.DiscussionPage{
		Page:        page,
		PageSize:    pageSize,
		Discussions: discussions,
	}, nil
}

// listingResponse is the wire shape of the discussions endpoint
type listingResponse struct {
	Discussions []wireDiscussion `json:"discussions"`
}

type wireDiscussion struct {
	Title         string       `json:"title"`
	BoardID       flexString   `json:"board_id"`
	ProjectSlug   string       `json:"project_slug"`
	LatestComment *wireComment `json:"latest_comment"`
}

type wireComment struct {
	ID                      flexString `json:"id"`
	DiscussionID            flexString `json:"discussion_id"`
	Body                    string     `json:"body"`
	UpdatedAt               string     `json:"updated_at"`
	UserDisplayName         string     `json:"user_display_name"`
	UserLogin               string     `json:"user_login"`
	ProjectSlug             string     `json:"project_slug"`
	BoardID                 flexString `json:"board_id"`
	DiscussionUsersCount    int        `json:"discussion_users_count"`
	DiscussionCommentsCount int        `json:"discussion_comments_count"`
}

func decodeDiscussions(data []byte) ([]domain.Discussion, error) {
	var listing listingResponse
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse discussions: %w", err)
	}
	if listing.Discussions == nil {
		return nil, fmt.Errorf("failed to parse discussions: response has no discussions list")
	}

	discussions := make([]domain.Discussion, 0, len(listing.Discussions))
	for i, d := range listing.Discussions {
		if d.LatestComment == nil {
			return nil, fmt.Errorf("failed to parse discussions: entry %d has no latest comment", i)
		}
		c := d.LatestComment
		discussions = append(discussions, domain.Discussion{
			Title:       d.Title,
			BoardID:     string(d.BoardID),
			ProjectSlug: d.ProjectSlug,
			LatestComment: domain.Comment{
				ID:                      string(c.ID),
				DiscussionID:            string(c.DiscussionID),
				Body:                    c.Body,
				UpdatedAt:               c.UpdatedAt,
				UserDisplayName:         c.UserDisplayName,
				UserLogin:               c.UserLogin,
				ProjectSlug:             c.ProjectSlug,
				BoardID:                 string(c.BoardID),
				DiscussionUsersCount:    c.DiscussionUsersCount,
				DiscussionCommentsCount: c.DiscussionCommentsCount,
			},
		})
	}
	return discussions, nil
}

// flexString accepts both JSON strings and numbers; the talk API is not consistent about ids
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}
