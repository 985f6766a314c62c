package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "talk-search-api/core/errors"
	"talk-search-api/pkg/featureflags"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "NotFoundError returns 404",
			input:          &apperrors.NotFoundError{Resource: "project link", ID: "/projects/x"},
			expectedStatus: 404,
			expectedInMsg:  "project link not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &apperrors.ValidationError{Field: "term", Message: "invalid pattern"},
			expectedStatus: 400,
			expectedInMsg:  "'term': invalid pattern",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &apperrors.ExternalAPIError{StatusCode: 500, Message: "server error", API: "talk"},
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &apperrors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 404 returns 400",
			input:          &apperrors.ExternalAPIError{StatusCode: 404, Message: "not found"},
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &apperrors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected external service response",
		},
		{
			name:           "wrapped ExternalAPIError still maps",
			input:          fmt.Errorf("page 3: %w", &apperrors.ExternalAPIError{StatusCode: 502}),
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("context: %w", &apperrors.ValidationError{Field: "boardId", Message: "required"}),
			expectedStatus: 400,
			expectedInMsg:  "'boardId': required",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}

func TestFeatureEnabled(t *testing.T) {
	off := featureflags.NewStaticManager(nil)
	ctx := featureflags.WithManager(context.Background(), off)

	// The handler's own manager wins over the request's
	assert.True(t, featureEnabled(ctx, enabledFlags(), featureflags.SearchEnabled))

	// Without one, the request context decides
	assert.False(t, featureEnabled(ctx, nil, featureflags.SearchEnabled))

	// And without either, defaults apply
	assert.True(t, featureEnabled(context.Background(), nil, featureflags.SearchEnabled))
}
