// ABOUTME: Feature flag middleware for HTTP requests
// ABOUTME: Makes the flag manager available to downstream middleware and handlers via the context

package middleware

import (
	"net/http"

	"talk-search-api/pkg/featureflags"
)

// FeatureFlagsMiddleware stores manager on each request context
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
