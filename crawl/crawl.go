// Package crawl walks a paginated listing, resolves each listed item's
// full-text document and hands segmented records to a sink.
package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/papersect"
)

// Frontier sizing for cross-page deduplication.
const (
	// frontierExpectedItems is the expected number of items for Bloom filter sizing.
	frontierExpectedItems = 100000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.001
)

// Controller walks a paginated listing one page at a time. Work is
// sequential: one fetch is in flight and records reach the sink in listing
// order, page 1 before page 2 and top to bottom within a page.
type Controller struct {
	Fetcher   papersect.Fetcher
	Listings  papersect.ListingParser
	Details   papersect.DetailParser
	Documents papersect.DocumentLoader
	Segmenter papersect.Segmenter
	Sink      papersect.RecordSink

	// Optional.
	RateLimiter  papersect.DomainLimiter
	TokenCounter papersect.TokenCounter
	Logger       LogFunc // detail page retries and degraded records

	// RetryDelays apply to detail page fetches. Nil means
	// DefaultRetryDelays; an empty slice disables retries. Listing pages
	// are fetched once.
	RetryDelays []time.Duration

	// MaxPages bounds the number of listing pages. Zero means no bound.
	MaxPages int

	// SkipDuplicates drops items whose detail URL was already emitted on
	// an earlier page or earlier on the same page.
	SkipDuplicates bool
}

// Result holds the outcome of a walk.
type Result struct {
	Pages      int // listing pages fetched
	Records    int // records written to the sink
	Available  int // records with a segmented document
	Absent     int // records without a document, including failed items
	Failed     int // items whose detail page or document could not be loaded
	Duplicates int // items skipped as already seen
	Tokens     int
}

// ProgressEvent reports progress during a walk.
type ProgressEvent struct {
	Type   ProgressType
	Page   int
	URL    string
	Items  int               // ProgressListing: items on the page
	Record *papersect.Record // ProgressRecord
	Error  error             // ProgressItemFailed, or why ProgressFinished stopped early
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressListing ProgressType = iota
	ProgressRecord
	ProgressItemFailed
	ProgressDuplicate
	ProgressFinished
)

// ProgressFunc is a callback for reporting walk progress.
type ProgressFunc func(event ProgressEvent)

// Run walks the listing starting at seedURL until a page has no enabled
// next-page control, MaxPages is reached or the next cursor cannot be
// derived.
//
// A listing page that cannot be fetched or parsed stops the walk with an
// ELISTING error; the partial result is returned with it. Per-item failures
// never stop the walk: the item is reported and emitted with every section
// absent. A sink failure stops the walk.
func (c *Controller) Run(ctx context.Context, seedURL string, progress ProgressFunc) (*Result, error) {
	cursor, err := NewCursor(seedURL)
	if err != nil {
		return nil, err
	}

	frontier := NewQueue()
	if c.SkipDuplicates {
		frontier = NewFrontier(frontierExpectedItems, frontierFalsePositiveRate)
	}
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	result := &Result{}
	var stop error
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if c.MaxPages > 0 && result.Pages >= c.MaxPages {
			break
		}

		listing, err := c.fetchListing(ctx, cursor)
		if err != nil {
			return result, err
		}
		result.Pages++
		notify(ProgressEvent{Type: ProgressListing, Page: cursor.Page, URL: cursor.URL, Items: len(listing.Items)})

		for _, item := range listing.Items {
			if !frontier.Push(item) {
				result.Duplicates++
				notify(ProgressEvent{Type: ProgressDuplicate, Page: cursor.Page, URL: item.DetailURL})
			}
		}

		for item, ok := frontier.Pop(); ok; item, ok = frontier.Pop() {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			rec, itemErr := c.processItem(ctx, item)
			rec.Position = result.Records
			if itemErr != nil {
				result.Failed++
				notify(ProgressEvent{Type: ProgressItemFailed, Page: cursor.Page, URL: item.DetailURL, Error: itemErr})
			}

			if err := c.Sink.WriteRecord(ctx, rec); err != nil {
				return result, fmt.Errorf("write record %s: %w", rec.URL, err)
			}
			result.Records++
			if rec.Available {
				result.Available++
			} else {
				result.Absent++
			}
			result.Tokens += rec.Tokens
			notify(ProgressEvent{Type: ProgressRecord, Page: cursor.Page, URL: rec.URL, Record: rec})
		}

		if !listing.HasNext {
			break
		}
		next, err := cursor.Next()
		if err != nil {
			stop = err
			break
		}
		cursor = next
	}

	notify(ProgressEvent{Type: ProgressFinished, Page: cursor.Page, Error: stop})
	return result, nil
}

// fetchListing makes a single attempt at the listing page.
func (c *Controller) fetchListing(ctx context.Context, cursor *Cursor) (*papersect.Listing, error) {
	if err := waitFor(ctx, c.RateLimiter, cursor.URL); err != nil {
		return nil, err
	}
	html, err := c.Fetcher.Fetch(ctx, cursor.URL)
	if err != nil {
		return nil, papersect.Errorf(papersect.ELISTING, "fetch listing page %d: %w", cursor.Page, err)
	}
	listing, err := c.Listings.ParseListing(html, cursor.URL)
	if err != nil {
		return nil, papersect.Errorf(papersect.ELISTING, "parse listing page %d: %w", cursor.Page, err)
	}
	return listing, nil
}

// processItem always returns a record. The error is non-nil when the item
// failed; the record then has every section absent.
func (c *Controller) processItem(ctx context.Context, item papersect.ItemReference) (*papersect.Record, error) {
	names := c.Segmenter.Names()

	html, err := c.fetchDetail(ctx, item.DetailURL)
	if err != nil {
		rec := papersect.NewRecord(&papersect.Detail{URL: item.DetailURL}, names)
		return rec, papersect.Errorf(papersect.EITEM, "fetch detail page: %w", err)
	}
	detail, err := c.Details.ParseDetail(html, item.DetailURL)
	if err != nil {
		rec := papersect.NewRecord(&papersect.Detail{URL: item.DetailURL}, names)
		return rec, papersect.Errorf(papersect.EITEM, "parse detail page: %w", err)
	}

	rec := papersect.NewRecord(detail, names)
	if detail.FullTextURL == "" {
		return rec, nil
	}

	doc, err := c.Documents.Load(ctx, detail.FullTextURL)
	if err != nil {
		if papersect.ErrorCode(err) == papersect.ENOTFOUND {
			return rec, nil
		}
		return rec, papersect.Errorf(papersect.EDOCUMENT, "load full text %s: %w", detail.FullTextURL, err)
	}

	rec.Available = true
	rec.Sections = c.Segmenter.Segment(doc)
	rec.ContentHash = ComputeHash(doc.Content)
	if c.TokenCounter != nil {
		tokens, err := papersect.CountSectionTokens(ctx, c.TokenCounter, rec.Sections)
		if err != nil {
			c.logf("count tokens for %s: %v", rec.URL, err)
		}
		rec.Tokens = tokens
	}
	return rec, nil
}

func (c *Controller) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger(format, args...)
	}
}

func (c *Controller) fetchDetail(ctx context.Context, rawURL string) (string, error) {
	if err := waitFor(ctx, c.RateLimiter, rawURL); err != nil {
		return "", err
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetry(ctx, rawURL, c.Fetcher.Fetch, c.Logger, delays)
}
