// ABOUTME: Search request construction and logical-to-fetch page translation
// ABOUTME: Validates caller input before any network activity and computes the fetch-page range

package search

import (
	"regexp"
	"strings"

	apperrors "talk-search-api/core/errors"
)

const (
	// LogicalPageSize is the talk API's default page size, the unit of caller page numbers
	LogicalPageSize = 10

	// MaxPageSize is the largest page size the talk API serves
	MaxPageSize = 100

	// DefaultPageSize is used when the caller does not ask for a page size
	DefaultPageSize = MaxPageSize

	// DefaultMaxPageSpan bounds how many logical pages one search may cover
	DefaultMaxPageSpan = 1000
)

// SearchRequest describes one board search. It lives for a single search call.
type SearchRequest struct {
	BoardID   string
	Pattern   *regexp.Regexp
	StartPage int
	EndPage   int
	PageSize  int
}

// NewSearchRequest validates the input and compiles term as a case-insensitive pattern.
// startPage > endPage is accepted and yields an empty page range.
func NewSearchRequest(boardID, term string, startPage, endPage, pageSize int) (*SearchRequest, error) {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return nil, &apperrors.ValidationError{Field: "boardId", Message: "board id cannot be empty"}
	}

	pattern, err := regexp.Compile("(?i)" + term)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "term", Message: err.Error()}
	}

	if startPage < 1 {
		return nil, &apperrors.ValidationError{Field: "startPage", Message: "must be a positive integer"}
	}
	if endPage < 1 {
		return nil, &apperrors.ValidationError{Field: "endPage", Message: "must be a positive integer"}
	}

	return &SearchRequest{
		BoardID:   boardID,
		Pattern:   pattern,
		StartPage: startPage,
		EndPage:   endPage,
		PageSize:  EffectivePageSize(pageSize),
	}, nil
}

// EffectivePageSize clamps a requested fetch page size to [LogicalPageSize, MaxPageSize].
// Zero or negative values select DefaultPageSize.
func EffectivePageSize(pageSize int) int {
	switch {
	case pageSize <= 0:
		return DefaultPageSize
	case pageSize > MaxPageSize:
		return MaxPageSize
	case pageSize < LogicalPageSize:
		return LogicalPageSize
	}
	return pageSize
}

// TranslatePages converts a logical page range into fetch pages of pageSize.
// Each bound becomes ceil(page / (pageSize/10)), so the fetched range may
// cover more logical pages than requested but never fewer.
func TranslatePages(startPage, endPage, pageSize int) (int, int) {
	pageSize = EffectivePageSize(pageSize)
	return fetchPage(startPage, pageSize), fetchPage(endPage, pageSize)
}

// Span is the number of logical pages the request covers, zero for a reversed range
func (r *SearchRequest) Span() int {
	if r.StartPage > r.EndPage {
		return 0
	}
	return r.EndPage - r.StartPage + 1
}

// FetchPages lists the fetch-page indices to retrieve, ascending
func (r *SearchRequest) FetchPages() []int {
	start, end := TranslatePages(r.StartPage, r.EndPage, r.PageSize)
	if start > end {
		return []int{}
	}
	n := end - start + 1
	pages := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, start+i)
	}
	return pages
}

// fetchPage computes ceil(page*10 / pageSize) without forming page*10,
// which overflows for very large page numbers.
func fetchPage(page, pageSize int) int {
	whole, rem := page/pageSize, page%pageSize
	return whole*LogicalPageSize + ceilDiv(rem*LogicalPageSize, pageSize)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
