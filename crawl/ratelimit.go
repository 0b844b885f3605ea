package crawl

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter rate-limits page fetches per domain using token
// buckets. Each domain gets its own limiter with a burst of 1.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second to each domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain, or
// the context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// unlimited is the default limiter: it never blocks.
type unlimited struct{}

func (unlimited) Wait(ctx context.Context, _ string) error {
	return ctx.Err()
}
