// Package tmdb provides an HTTP client for The Movie Database catalog API.
//
// # Overview
//
// This package defines the read-only catalog client used by the browse,
// search, and detail surfaces. It handles HTTP communication, JSON
// deserialization, API key injection, and image URL resolution.
//
// # Client Usage
//
// Create a client using the base URLs and API key from configuration:
//
//	client, err := tmdb.NewClient(cfg.CatalogURL, cfg.ImageURL, cfg.APIKey, logger)
//	if err != nil {
//		return fmt.Errorf("init catalog client: %w", err)
//	}
//
//	trending := client.TrendingMovies(ctx)
//	results := client.SearchMovies(ctx, "dune")
//
// # Endpoints
//
//   - GET /trending/movie/week: This week's trending movies
//   - GET /movie/popular: Popular movies listing
//   - GET /search/movie?query=<text>: Free-text movie search
//   - GET /movie/{id}: Single movie details
//
// All endpoints receive the api_key query parameter, an Accept header, a
// User-Agent header, and a 10-second timeout. Requests honor context
// cancellation.
//
// # Failure Policy
//
// Listing and search calls never surface errors to the caller: transport
// failures, HTTP error statuses, and malformed payloads all degrade to an
// empty result, with the cause logged. This is deliberate asymmetry with the
// auth package, where failures are user-visible. The main feed must never
// block or crash on a flaky network.
//
// MovieDetails returns nil on failure for the same reason.
//
// # Empty Queries
//
// SearchMovies short-circuits empty and whitespace-only queries to an empty
// result without issuing a request.
//
// # Image Resolution
//
// ImageURL prefixes a poster/backdrop path fragment with the configured
// image base (typically the w500 rendition). An absent fragment resolves to
// "" so callers render a placeholder rather than requesting a broken URL.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling internally.
package tmdb
