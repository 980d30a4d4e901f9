// Package readability extracts the main article markup of full-text pages
// using github.com/go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/papersect"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements papersect.ContentExtractor at compile time.
var _ papersect.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability. Headings survive extraction, though h1
// may be demoted to h2.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent returns the article markup of rawHTML.
func (e *Extractor) ExtractContent(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", papersect.Errorf(papersect.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", papersect.Errorf(papersect.ENOTFOUND, "no article content: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", papersect.Errorf(papersect.ENOTFOUND, "no article content")
	}
	return article.Content, nil
}
