package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papersect"
)

// DetailSelectors names the CSS selectors used to read an item page.
type DetailSelectors struct {
	Title    string
	Authors  string
	Date     string
	FullText string
}

// PubMedDetailSelectors match PubMed article pages.
var PubMedDetailSelectors = DetailSelectors{
	Title:    "h1.heading-title",
	Authors:  "a.full-name",
	Date:     "span.cit",
	FullText: "a.link-item.pmc",
}

// Ensure DetailParser implements papersect.DetailParser at compile time.
var _ papersect.DetailParser = (*DetailParser)(nil)

// DetailParser extracts item metadata from a detail page.
type DetailParser struct {
	Selectors DetailSelectors
}

// NewDetailParser returns a parser using PubMedDetailSelectors.
func NewDetailParser() *DetailParser {
	return &DetailParser{Selectors: PubMedDetailSelectors}
}

// ParseDetail reads the first title heading, every author name joined with
// ", ", the citation date and the full-text link if one is offered.
func (p *DetailParser) ParseDetail(html string, pageURL string) (*papersect.Detail, error) {
	doc, base, err := parse(html, pageURL)
	if err != nil {
		return nil, err
	}

	detail := &papersect.Detail{
		URL:   pageURL,
		Title: cleanText(doc.Find(p.Selectors.Title).First().Text()),
	}
	if detail.Title == "" {
		detail.Title = papersect.UnknownTitle
	}

	var authors []string
	doc.Find(p.Selectors.Authors).Each(func(_ int, sel *goquery.Selection) {
		if name := cleanText(sel.Text()); name != "" {
			authors = append(authors, name)
		}
	})
	detail.Authors = strings.Join(authors, ", ")

	detail.PublicationDate = cleanText(doc.Find(p.Selectors.Date).First().Text())

	doc.Find(p.Selectors.FullText).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		detail.FullTextURL = href(base, sel)
		return detail.FullTextURL == ""
	})

	return detail, nil
}
