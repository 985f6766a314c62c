// ABOUTME: Board search handler for the Huma API
// ABOUTME: Searches the latest comments of a talk board across a range of result pages

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"talk-search-api/api/dto/mappers"
	"talk-search-api/api/dto/responses"
	"talk-search-api/core/interfaces"
	"talk-search-api/pkg/featureflags"
)

// SearchHandler handles board search requests
type SearchHandler struct {
	searchService interfaces.BoardSearchService
	flags         featureflags.Manager
	now           func() time.Time
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService interfaces.BoardSearchService, flags featureflags.Manager) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		flags:         flags,
		now:           time.Now,
	}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchBoard",
		Method:      http.MethodGet,
		Path:        "/boards/{boardId}/search",
		Summary:     "Search a talk board",
		Description: "Fetches a range of discussion pages of a board concurrently and returns discussions whose title or latest comment matches the term. " +
			"Pages that cannot be fetched are reported in failures; the rest of the results are still returned.",
		Tags: []string{"Search"},
	}, h.SearchBoard)
}

// SearchBoardInput defines the input for the SearchBoard operation
type SearchBoardInput struct {
	BoardID   string `path:"boardId" doc:"Talk board id" example:"4412"`
	Term      string `query:"term" doc:"Case-insensitive regular expression; empty matches everything" example:"eclips"`
	StartPage int    `query:"startPage" default:"1" minimum:"1" doc:"First result page, in pages of 10"`
	EndPage   int    `query:"endPage" default:"10" minimum:"1" doc:"Last result page, in pages of 10; the range may span at most the configured page limit (1000 by default)"`
	PageSize  int    `query:"pageSize" doc:"Discussions per fetch, clamped to 10..100; the server default applies when omitted"`
}

// SearchBoardOutput defines the output for the SearchBoard operation
type SearchBoardOutput struct {
	Body responses.SearchResponse
}

// SearchBoard handles GET /boards/{boardId}/search
func (h *SearchHandler) SearchBoard(ctx context.Context, input *SearchBoardInput) (*SearchBoardOutput, error) {
	if !featureEnabled(ctx, h.flags, featureflags.SearchEnabled) {
		return nil, disabled("search")
	}

	result, err := h.searchService.SearchBoard(ctx, input.BoardID, input.Term, input.StartPage, input.EndPage, input.PageSize)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchBoardOutput{
		Body: *mappers.ToSearchResponse(input.BoardID, input.Term, result, h.now()),
	}, nil
}
