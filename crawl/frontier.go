package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/papersect"
	"github.com/fwojciec/papersect/bloom"
)

// Compile-time interface verification.
var _ papersect.ItemFrontier = (*Frontier)(nil)

// Frontier is a first-in first-out queue of item references. When built
// with NewFrontier it drops items whose detail URL was already pushed,
// across every page of a walk. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter // nil keeps duplicates
	queue []papersect.ItemReference
}

// NewFrontier creates a deduplicating Frontier sized for n expected items
// with the given false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// NewQueue creates a Frontier that keeps duplicate items.
func NewQueue() *Frontier {
	return &Frontier{}
}

// Push adds an item to the back of the queue.
// Returns false if the item was dropped as already seen. URL fragments are
// ignored when comparing.
func (f *Frontier) Push(item papersect.ItemReference) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen != nil {
		if f.seen.Seen(stripFragment(item.DetailURL)) {
			return false
		}
	}

	f.queue = append(f.queue, item)
	return true
}

// Pop returns the oldest queued item.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (papersect.ItemReference, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return papersect.ItemReference{}, false
	}
	item := f.queue[0]
	f.queue[0] = papersect.ItemReference{}
	f.queue = f.queue[1:]
	return item, true
}

// Len returns the number of queued items.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

func stripFragment(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		return rawURL[:idx]
	}
	return rawURL
}
