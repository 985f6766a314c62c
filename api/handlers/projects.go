// ABOUTME: Project link handler for the Huma API
// ABOUTME: Resolves the external lookup URL for a subject id on a given project

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"talk-search-api/api/dto/mappers"
	"talk-search-api/api/dto/responses"
	"talk-search-api/core/interfaces"
	"talk-search-api/pkg/featureflags"
)

// ProjectHandler handles project link requests
type ProjectHandler struct {
	links interfaces.ProjectLinkService
	flags featureflags.Manager
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(links interfaces.ProjectLinkService, flags featureflags.Manager) *ProjectHandler {
	return &ProjectHandler{links: links, flags: flags}
}

// RegisterRoutes registers project routes
func (h *ProjectHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "projectLink",
		Method:      http.MethodGet,
		Path:        "/projects/links",
		Summary:     "Resolve an external link for a subject",
		Description: "Finds the first configured project whose path prefix matches path and substitutes value into its URL template",
		Tags:        []string{"Projects"},
	}, h.ResolveLink)

	huma.Register(api, huma.Operation{
		OperationID: "listProjectLinks",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List configured project links",
		Description: "Returns the project link entries in the order they are matched",
		Tags:        []string{"Projects"},
	}, h.ListLinks)
}

// ResolveLinkInput defines the input for the ResolveLink operation
type ResolveLinkInput struct {
	Path  string `query:"path" required:"true" doc:"Project page path" example:"/projects/vbkostov/eclipsing-binary-patrol/talk"`
	Value string `query:"value" required:"true" doc:"Subject metadata value, e.g. a TIC id" example:"12345678"`
}

// ResolveLinkOutput defines the output for the ResolveLink operation
type ResolveLinkOutput struct {
	Body responses.ProjectLinkResponse
}

// ResolveLink handles GET /projects/links
func (h *ProjectHandler) ResolveLink(ctx context.Context, input *ResolveLinkInput) (*ResolveLinkOutput, error) {
	if !featureEnabled(ctx, h.flags, featureflags.ProjectLinksEnabled) {
		return nil, disabled("project links")
	}

	url, err := h.links.BuildURL(input.Path, input.Value)
	if err != nil {
		return nil, toHumaError(err)
	}

	link, _ := h.links.Lookup(input.Path)
	return &ResolveLinkOutput{
		Body: *mappers.ToProjectLinkResponse(link, url),
	}, nil
}

// ListLinksOutput defines the output for the ListLinks operation
type ListLinksOutput struct {
	Body responses.ProjectLinksResponse
}

// ListLinks handles GET /projects
func (h *ProjectHandler) ListLinks(ctx context.Context, input *struct{}) (*ListLinksOutput, error) {
	if !featureEnabled(ctx, h.flags, featureflags.ProjectLinksEnabled) {
		return nil, disabled("project links")
	}

	return &ListLinksOutput{
		Body: *mappers.ToProjectLinksResponse(h.links.Links()),
	}, nil
}
