package mock

import "github.com/fwojciec/papersect"

var _ papersect.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of papersect.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string, pageURL string) (*papersect.Listing, error)
}

func (p *ListingParser) ParseListing(html string, pageURL string) (*papersect.Listing, error) {
	return p.ParseListingFn(html, pageURL)
}

var _ papersect.DetailParser = (*DetailParser)(nil)

// DetailParser is a mock implementation of papersect.DetailParser.
type DetailParser struct {
	ParseDetailFn func(html string, pageURL string) (*papersect.Detail, error)
}

func (p *DetailParser) ParseDetail(html string, pageURL string) (*papersect.Detail, error) {
	return p.ParseDetailFn(html, pageURL)
}
