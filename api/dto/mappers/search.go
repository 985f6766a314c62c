// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Renders search results, subject ids and project links for the HTTP API

package mappers

import (
	"time"

	"talk-search-api/api/dto/responses"
	"talk-search-api/core/domain"
	"talk-search-api/core/format"
)

// ToSearchResponse converts a domain SearchResult to a SearchResponse DTO.
// now anchors the relative update times.
func ToSearchResponse(boardID, term string, result *domain.SearchResult, now time.Time) *responses.SearchResponse {
	if result == nil {
		return nil
	}

	response := &responses.SearchResponse{
		BoardID:        boardID,
		Term:           term,
		PageSize:       result.PageSize,
		RequestedPages: result.RequestedPages,
		SucceededPages: result.SucceededPages(),
		FailureCount:   result.FailureCount(),
		Partial:        result.Partial(),
		Failures:       make([]responses.PageFailureResponse, 0, len(result.Failures)),
		TotalItems:     len(result.Items),
		Items:          make([]responses.SearchItemResponse, 0, len(result.Items)),
	}
	if response.RequestedPages == nil {
		response.RequestedPages = []int{}
	}

	for _, f := range result.Failures {
		response.Failures = append(response.Failures, responses.PageFailureResponse{
			Page:  f.Page,
			Error: f.Err.Error(),
		})
	}

	for i := range result.Items {
		response.Items = append(response.Items, ToSearchItemResponse(&result.Items[i], now))
	}

	return response
}

// ToSearchItemResponse converts a SearchResultItem to its DTO
func ToSearchItemResponse(item *domain.SearchResultItem, now time.Time) responses.SearchItemResponse {
	return responses.SearchItemResponse{
		Title:                   item.Title,
		Excerpt:                 format.Excerpt(item.Body),
		Body:                    item.Body,
		UpdatedAt:               item.UpdatedAt,
		UpdatedAgo:              format.RelativeTime(item.UpdatedAt, now),
		URL:                     item.URL,
		UserDisplayName:         item.UserDisplayName,
		UserProjectURL:          item.UserProjectURL,
		DiscussionUsersCount:    item.DiscussionUsersCount,
		DiscussionCommentsCount: item.DiscussionCommentsCount,
	}
}

// ToSuperWASPSubjectResponse converts parsed ids and links to a DTO
func ToSuperWASPSubjectResponse(ids *domain.SourceIDs, links []domain.Link, magnitude *float64) *responses.SuperWASPSubjectResponse {
	if ids == nil {
		return nil
	}

	response := &responses.SuperWASPSubjectResponse{
		SourceID:        ids.SourceID,
		SourceIDNoSpace: ids.SourceIDNoSpace,
		Coord:           ids.Coord,
		CoordDeg:        ids.CoordDeg,
		RA:              ids.RA,
		Dec:             ids.Dec,
		RADeg:           ids.RADeg,
		DecDeg:          ids.DecDeg,
		Links:           make([]responses.LinkResponse, 0, len(links)),
		Magnitude:       magnitude,
	}
	for _, l := range links {
		response.Links = append(response.Links, responses.LinkResponse{Name: l.Name, URL: l.URL})
	}
	return response
}

// ToProjectLinkResponse converts a resolved project link to a DTO
func ToProjectLinkResponse(link domain.ProjectLink, url string) *responses.ProjectLinkResponse {
	return &responses.ProjectLinkResponse{
		URL:        url,
		PathPrefix: link.PathPrefix,
		HeaderName: link.HeaderName,
	}
}

// ToProjectLinksResponse lists configured links, keeping their lookup order
func ToProjectLinksResponse(links []domain.ProjectLink) *responses.ProjectLinksResponse {
	response := &responses.ProjectLinksResponse{
		Links: make([]responses.ProjectLinkTemplateResponse, 0, len(links)),
	}
	for _, l := range links {
		response.Links = append(response.Links, responses.ProjectLinkTemplateResponse{
			PathPrefix:  l.PathPrefix,
			HeaderName:  l.HeaderName,
			URLTemplate: l.URLTemplate,
		})
	}
	return response
}
