package papersect

import "context"

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch returns the body at url. Non-2xx responses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
