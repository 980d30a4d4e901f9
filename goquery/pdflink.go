package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papersect"
)

// Ensure PDFLinkFinder implements papersect.PDFLinkFinder at compile time.
var _ papersect.PDFLinkFinder = (*PDFLinkFinder)(nil)

// PDFLinkFinder locates the PDF download on a full-text page. The Selector
// match is preferred; otherwise the first anchor whose path ends in ".pdf"
// is used.
type PDFLinkFinder struct {
	Selector string
}

// NewPDFLinkFinder returns a finder that prefers a.pdf-link anchors.
func NewPDFLinkFinder() *PDFLinkFinder {
	return &PDFLinkFinder{Selector: "a.pdf-link"}
}

// FindPDFLink returns the absolute PDF URL, resolved against pageURL.
func (f *PDFLinkFinder) FindPDFLink(html string, pageURL string) (string, bool) {
	doc, base, err := parse(html, pageURL)
	if err != nil {
		return "", false
	}

	var link string
	if f.Selector != "" {
		doc.Find(f.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			link = href(base, sel)
			return link == ""
		})
	}
	if link != "" {
		return link, true
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		u := href(base, sel)
		if u != "" && isPDFPath(u) {
			link = u
			return false
		}
		return true
	})
	return link, link != ""
}

func isPDFPath(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}
