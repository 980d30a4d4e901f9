package papersect

import "context"

// ItemFrontier queues item references in listing order.
type ItemFrontier interface {
	// Push adds an item to the back of the queue.
	// Returns false if the item was dropped as already seen.
	Push(item ItemReference) bool

	// Pop returns the oldest queued item.
	// Returns false if the frontier is empty.
	Pop() (ItemReference, bool)

	// Len returns the number of queued items.
	Len() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
