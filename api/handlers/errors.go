// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	apperrors "talk-search-api/core/errors"
	"talk-search-api/pkg/featureflags"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if apperrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if apperrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var apiErr *apperrors.ExternalAPIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("External service error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest("External service request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}

// disabled reports a feature switched off by configuration
func disabled(feature string) error {
	return huma.Error404NotFound(feature + " is disabled")
}

// featureEnabled checks the handler's own manager, or the request's when it has none
func featureEnabled(ctx context.Context, manager featureflags.Manager, flag featureflags.FeatureFlag) bool {
	if manager == nil {
		return featureflags.IsEnabled(ctx, flag)
	}
	return manager.IsEnabled(ctx, flag)
}
