// Package http provides an HTTP client configured for AutoEq data
// fetches.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Conditional GETs with ETag revalidation (for the profile index)
//   - A distinguishable not-found error (for the .txt → .csv fallback)
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch a profile
//	text, err := client.GetString(ctx, profileURL)
//	if errors.Is(err, http.ErrNotFound) {
//	    // try the CSV fallback
//	}
//
// # Conditional Fetch
//
//	body, etag, notModified, err := client.GetConditional(ctx, indexURL, cachedETag)
//	if notModified {
//	    // serve from the on-disk cache
//	}
package http
