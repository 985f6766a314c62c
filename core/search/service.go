// ABOUTME: Search service aggregates talk board comment searches over concurrent page fetches
// ABOUTME: Filters and projects each page's discussions and tolerates individual page failures

package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"talk-search-api/core/domain"
	apperrors "talk-search-api/core/errors"
	"talk-search-api/core/interfaces"
)

// newlineReplacer maps every line break character to one space so patterns can span lines
var newlineReplacer = strings.NewReplacer("\n", " ", "\r", " ")

// SearchService handles talk board comment searches
type SearchService struct {
	deps            interfaces.Dependencies
	defaultPageSize int
	maxPageSpan     int
}

// Option configures a SearchService
type Option func(*SearchService)

// WithDefaultPageSize sets the page size used when a caller passes none
func WithDefaultPageSize(n int) Option {
	return func(s *SearchService) {
		s.defaultPageSize = n
	}
}

// WithMaxPageSpan sets how many logical pages one search may cover.
// Values below one keep the default.
func WithMaxPageSpan(n int) Option {
	return func(s *SearchService) {
		if n > 0 {
			s.maxPageSpan = n
		}
	}
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, opts ...Option) *SearchService {
	s := &SearchService{
		deps:            deps,
		defaultPageSize: DefaultPageSize,
		maxPageSpan:     DefaultMaxPageSpan,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchBoard builds a request from raw caller input and runs it.
// A pageSize of zero or less selects the service default.
func (s *SearchService) SearchBoard(ctx context.Context, boardID, term string, startPage, endPage, pageSize int) (*domain.SearchResult, error) {
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	req, err := NewSearchRequest(boardID, term, startPage, endPage, pageSize)
	if err != nil {
		return nil, err
	}
	return s.Search(ctx, req)
}

// pageOutcome is the settled result of one fetch page
type pageOutcome struct {
	page  int
	items []domain.SearchResultItem
	err   error
}

// Search fetches every fetch page of the request concurrently and merges the matches.
// A failing page never fails the call; it is reported in SearchResult.Failures.
// Items are grouped by the order in which the page fetches completed.
func (s *SearchService) Search(ctx context.Context, req *SearchRequest) (*domain.SearchResult, error) {
	if req == nil || req.Pattern == nil {
		return nil, &apperrors.ValidationError{Field: "term", Message: "search pattern is required"}
	}
	if span := req.Span(); span > s.maxPageSpan {
		return nil, &apperrors.ValidationError{
			Field:   "endPage",
			Message: fmt.Sprintf("page range covers %d pages, at most %d allowed", span, s.maxPageSpan),
		}
	}
	if s.deps.Discussions == nil {
		return nil, errors.New("discussion source not configured")
	}

	pages := req.FetchPages()
	start := time.Now()

	resultsChan := make(chan pageOutcome, len(pages))
	var wg sync.WaitGroup

	for _, page := range pages {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			items, err := s.searchPage(ctx, req, page)
			resultsChan <- pageOutcome{page: page, items: items, err: err}
		}(page)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	result := &domain.SearchResult{
		Items:          []domain.SearchResultItem{},
		RequestedPages: pages,
		PageSize:       req.PageSize,
	}

	for outcome := range resultsChan {
		if outcome.err != nil {
			result.Failures = append(result.Failures, &apperrors.PageFetchError{Page: outcome.page, Err: outcome.err})
			continue
		}
		result.Items = append(result.Items, outcome.items...)
	}

	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Page < result.Failures[j].Page
	})

	s.logOutcome(req, result, time.Since(start))

	return result, nil
}

// searchPage fetches one page and returns its matching, projected discussions
func (s *SearchService) searchPage(ctx context.Context, req *SearchRequest, page int) ([]domain.SearchResultItem, error) {
	listing, err := s.deps.Discussions.FetchDiscussions(ctx, req.BoardID, page, req.PageSize)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("empty response for page %d", page)
	}

	items := make([]domain.SearchResultItem, 0)
	for _, d := range listing.Discussions {
		if req.Pattern.MatchString(MatchText(d)) {
			items = append(items, Project(d))
		}
	}
	return items, nil
}

func (s *SearchService) logOutcome(req *SearchRequest, result *domain.SearchResult, elapsed time.Duration) {
	if s.deps.Logger == nil {
		return
	}

	if n := result.FailureCount(); n > 0 {
		failures := make([]string, 0, n)
		remote := 0
		for _, f := range result.Failures {
			failures = append(failures, f.Error())
			if apperrors.IsExternalAPI(f) {
				remote++
			}
		}
		s.deps.Logger.Warn(fmt.Sprintf("%d page(s) cannot be fetched during search", n), map[string]interface{}{
			"board_id":        req.BoardID,
			"failed_pages":    n,
			"remote_errors":   remote,
			"requested_pages": len(result.RequestedPages),
			"errors":          failures,
		})
	}

	s.deps.Logger.Debug("Board search completed", map[string]interface{}{
		"board_id":        req.BoardID,
		"pattern":         req.Pattern.String(),
		"page_size":       req.PageSize,
		"requested_pages": len(result.RequestedPages),
		"matches":         len(result.Items),
		"duration_ms":     elapsed.Milliseconds(),
	})
}

// MatchText is the text a pattern is matched against: the title and the body
// with every line break replaced by a space.
func MatchText(d domain.Discussion) string {
	return d.Title + " " + newlineReplacer.Replace(d.LatestComment.Body)
}

// Project converts a matching discussion into a display-ready result item
func Project(d domain.Discussion) domain.SearchResultItem {
	c := d.LatestComment
	return domain.SearchResultItem{
		Title:                   d.Title,
		Body:                    c.Body,
		UpdatedAt:               c.UpdatedAt,
		URL:                     fmt.Sprintf("/projects/%s/talk/%s/%s?comment=%s", d.ProjectSlug, d.BoardID, c.DiscussionID, c.ID),
		UserDisplayName:         c.UserDisplayName,
		UserProjectURL:          fmt.Sprintf("/projects/%s/users/%s", d.ProjectSlug, c.UserLogin),
		DiscussionUsersCount:    c.DiscussionUsersCount,
		DiscussionCommentsCount: c.DiscussionCommentsCount,
	}
}
