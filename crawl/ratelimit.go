package crawl

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/papersect"
	"golang.org/x/time/rate"
)

var _ papersect.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so listing and full-text hosts are
// paced independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per domain, with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
	}
}

// NewDomainLimiterEvery creates a DomainLimiter that spaces requests to the
// same domain at least d apart. A non-positive d disables limiting.
func NewDomainLimiterEvery(d time.Duration) *DomainLimiter {
	limit := rate.Inf
	if d > 0 {
		limit = rate.Every(d)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// waitFor blocks on limiter for rawURL's host. A nil limiter never blocks.
func waitFor(ctx context.Context, limiter papersect.DomainLimiter, rawURL string) error {
	if limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return papersect.Errorf(papersect.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return limiter.Wait(ctx, u.Host)
}
