// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness together with the current feature flag states

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"talk-search-api/api/dto/responses"
	"talk-search-api/pkg/featureflags"
)

// HealthHandler handles health checks
type HealthHandler struct {
	version string
	flags   featureflags.Manager
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, flags featureflags.Manager) *HealthHandler {
	return &HealthHandler{version: version, flags: flags}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	manager := h.flags
	if manager == nil {
		manager = featureflags.FromContext(ctx)
	}
	flags := map[string]bool{}
	for flag, enabled := range manager.GetAllFlags() {
		flags[string(flag)] = enabled
	}

	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:  "ok",
			Version: h.version,
			Flags:   flags,
		},
	}, nil
}
