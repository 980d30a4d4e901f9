// Package goquery implements the DOM query surface: listing, detail and
// full-text page parsing on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papersect"
)

// parse returns the document for html and the parsed page URL.
func parse(html string, pageURL string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, papersect.Errorf(papersect.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, papersect.Errorf(papersect.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, base, nil
}

// href returns the absolute URL of sel's href attribute, or "" when the
// element has no usable link.
func href(base *url.URL, sel *goquery.Selection) string {
	h, exists := sel.Attr("href")
	if !exists || strings.TrimSpace(h) == "" {
		return ""
	}
	if isNonHTTPLink(h) {
		return ""
	}
	return resolveURL(base, h)
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed.
// Fragments are stripped from the resolved URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// cleanText trims s and collapses internal whitespace runs to one space.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
