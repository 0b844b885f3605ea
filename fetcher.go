package regcheck

import "context"

// Fetcher retrieves HTML from URLs. Implementations may use plain HTTP
// or browser automation for JavaScript-rendered portals.
type Fetcher interface {
	// Fetch returns the page HTML for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for outbound requests.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
