package papersect

// ItemReference points at the detail page of one listed item.
type ItemReference struct {
	// DetailURL is absolute, resolved against the listing page URL.
	DetailURL string `json:"detailUrl"`
}

// Listing is one parsed page of a paginated result listing.
type Listing struct {
	URL string

	// Items are in document order. Duplicates are kept.
	Items []ItemReference

	// HasNext reports whether the page exposes an enabled next-page control.
	HasNext bool
}

// Detail holds the metadata parsed from an item's detail page.
type Detail struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	Authors         string `json:"authors"`
	PublicationDate string `json:"publicationDate"`

	// FullTextURL is empty when the item offers no full-text document.
	FullTextURL string `json:"fullTextUrl,omitempty"`
}

// UnknownTitle is used when a detail page has no recognizable title.
const UnknownTitle = "unknown"

// ListingParser extracts item references and the next-page signal from a
// listing page.
type ListingParser interface {
	// ParseListing parses html fetched from pageURL. Relative item links
	// are resolved against pageURL.
	ParseListing(html string, pageURL string) (*Listing, error)
}

// DetailParser extracts item metadata from a detail page.
type DetailParser interface {
	// ParseDetail parses html fetched from pageURL. A missing title yields
	// UnknownTitle rather than an error.
	ParseDetail(html string, pageURL string) (*Detail, error)
}
