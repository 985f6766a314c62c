// ABOUTME: Subject follow-up handler for the Huma API
// ABOUTME: Turns a SuperWASP subject file name into ids, coordinates, catalogue links and magnitude

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"talk-search-api/api/dto/mappers"
	"talk-search-api/api/dto/responses"
	"talk-search-api/core/subject"
	"talk-search-api/pkg/featureflags"
)

// SubjectHandler handles subject helper requests
type SubjectHandler struct {
	flags featureflags.Manager
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(flags featureflags.Manager) *SubjectHandler {
	return &SubjectHandler{flags: flags}
}

// RegisterRoutes registers subject routes
func (h *SubjectHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "superwaspSubject",
		Method:      http.MethodGet,
		Path:        "/subjects/superwasp",
		Summary:     "Follow up on a SuperWASP subject",
		Description: "Parses a subject file name such as 1SWASPJ002447.51+620405.0_Pn_fold.gif and returns its source ids, coordinates and catalogue links",
		Tags:        []string{"Subjects"},
	}, h.SuperWASP)
}

// SuperWASPInput defines the input for the SuperWASP operation
type SuperWASPInput struct {
	FileName string  `query:"fileName" required:"true" doc:"Subject file name" example:"1SWASPJ002447.51+620405.0_Pn_fold.gif"`
	Flux     float64 `query:"flux" doc:"Optional flux in micro-Vega to convert to magnitude"`
}

// SuperWASPOutput defines the output for the SuperWASP operation
type SuperWASPOutput struct {
	Body responses.SuperWASPSubjectResponse
}

// SuperWASP handles GET /subjects/superwasp
func (h *SubjectHandler) SuperWASP(ctx context.Context, input *SuperWASPInput) (*SuperWASPOutput, error) {
	if !featureEnabled(ctx, h.flags, featureflags.SubjectToolsEnabled) {
		return nil, disabled("subject tools")
	}

	ids, err := subject.ParseFileName(input.FileName)
	if err != nil {
		return nil, toHumaError(err)
	}

	var magnitude *float64
	if input.Flux != 0 {
		mag, err := subject.FluxToMagnitude(input.Flux)
		if err != nil {
			return nil, toHumaError(err)
		}
		magnitude = &mag
	}

	return &SuperWASPOutput{
		Body: *mappers.ToSuperWASPSubjectResponse(ids, subject.FollowUpLinks(ids), magnitude),
	}, nil
}
