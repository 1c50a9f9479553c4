// Package tcgdex provides an HTTP client for the TCGdex card API.
//
// # Overview
//
// The package defines the read-only API client Cardex uses to look up
// trading cards. It handles HTTP communication, JSON decoding, and
// type-safe representation of the two payload shapes the API serves:
// partial records from the list endpoint and full records from the
// detail endpoint.
//
// # Client Usage
//
// Create a client with the API base URL and a language code:
//
//	client, err := tcgdex.NewClient("https://api.tcgdex.net", "en")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// Search by name
//	briefs, err := client.SearchCards(ctx, "furret")
//
//	// Fetch one card
//	card, err := client.GetCard(ctx, "swsh3-136")
//
// # API Endpoints
//
// Two read-only endpoints are used, both relative to the configured
// language:
//
//   - GET /v2/{lang}/cards?name={query}: JSON array of partial card records
//   - GET /v2/{lang}/cards/{id}: full record for a single card
//
// The list endpoint occasionally answers with a non-array JSON body; the
// client treats such payloads as an empty result set rather than an error,
// matching how the API behaves for queries with no matches. A body that is
// not valid JSON at all is an error.
//
// # Image Assets
//
// Card illustrations live under the record's image field, addressed as
// {image}/{quality}.webp. CardBrief.ImageURL and Card.ImageURL build these
// addresses; QualityLow suits thumbnails, QualityHigh the detail view.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, share a 10-second client timeout, and return wrapped errors
// describing which step failed. Non-2xx statuses are reported as errors;
// the caller decides whether to surface or swallow them.
//
// # Error Handling
//
// The client distinguishes:
//
//   - initialization errors: unparseable base URL
//   - network errors: DNS failure, refused connection, timeout
//   - HTTP errors: 4xx/5xx statuses from the API
//   - decode errors: malformed JSON bodies
//
// # Thread Safety
//
// The Client struct is safe for concurrent use; the underlying http.Client
// pools connections internally.
//
// # Design Rationale
//
// The package is intentionally minimal: no caching, no retries, no
// mutations, no streaming. Cardex is a read-only viewer and the browse
// controller owns all request-lifecycle policy.
package tcgdex
