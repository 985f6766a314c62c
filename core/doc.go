// Package core contains the business logic for the Talk Search API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Discussion, SearchResult, SourceIDs, ProjectLink)
// - search: Board comment search with concurrent page fan-out
// - format: Excerpt and relative time rendering for search results
// - subject: SuperWASP file name parsing and follow-up catalogue links
// - projects: Registry of per-project external link templates
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, discussions, logger)
//
// # Usage Example
//
//	import (
//	    "talk-search-api/core/interfaces"
//	    "talk-search-api/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    Discussions: mySource, // implements interfaces.DiscussionSource
//	    Logger:      myLogger, // implements interfaces.Logger
//	}
//
//	svc := search.NewSearchService(deps, search.WithDefaultPageSize(50))
//
//	// Search pages 1..3 of the board, in units of 10 comments
//	result, err := svc.SearchBoard(ctx, "BCE00012ab", "eclipse", 1, 3, 0)
package core
