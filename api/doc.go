// Package api provides the HTTP API layer for the talk search service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: response DTOs and mappers from domain models
// - middleware/: request logging, request ids, feature flags and rate limiting
//
// # Routes
//
//	GET /boards/{boardId}/search   comment search across result pages
//	GET /subjects/superwasp        SuperWASP subject ids and catalogue links
//	GET /projects/links            external link for a project subject
//	GET /projects                  configured project link entries
//	GET /health                    liveness and feature flags
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router, limiter := api.NewServerAPI(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewSearchHandler(searchService, flags).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Validation errors map to 400,
// unknown projects to 404 and upstream talk failures to 503. A board search
// with failed pages is still a 200; failures are listed in the body.
package api
