package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papersect"
)

// ListingSelectors names the CSS selectors used to read a listing page.
type ListingSelectors struct {
	// Item selects the anchors that link to item detail pages.
	Item string

	// Next selects the next-page control. The control counts only while it
	// carries no disabled attribute.
	Next string
}

// PubMedListingSelectors match PubMed search result pages.
var PubMedListingSelectors = ListingSelectors{
	Item: "a.docsum-title",
	Next: "button.next-page-btn",
}

// Ensure ListingParser implements papersect.ListingParser at compile time.
var _ papersect.ListingParser = (*ListingParser)(nil)

// ListingParser extracts item references and the next-page signal from a
// paginated listing.
type ListingParser struct {
	Selectors ListingSelectors
}

// NewListingParser returns a parser using PubMedListingSelectors.
func NewListingParser() *ListingParser {
	return &ListingParser{Selectors: PubMedListingSelectors}
}

// ParseListing returns item references in document order. Duplicate links
// are kept.
func (p *ListingParser) ParseListing(html string, pageURL string) (*papersect.Listing, error) {
	doc, base, err := parse(html, pageURL)
	if err != nil {
		return nil, err
	}

	listing := &papersect.Listing{URL: pageURL}
	doc.Find(p.Selectors.Item).Each(func(_ int, sel *goquery.Selection) {
		if u := href(base, sel); u != "" {
			listing.Items = append(listing.Items, papersect.ItemReference{DetailURL: u})
		}
	})

	doc.Find(p.Selectors.Next).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if _, disabled := sel.Attr("disabled"); !disabled {
			listing.HasNext = true
			return false
		}
		return true
	})

	return listing, nil
}
