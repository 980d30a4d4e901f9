// Package trafilatura extracts the main article markup of full-text pages
// using github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/papersect"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements papersect.ContentExtractor at compile time.
var _ papersect.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura with its fallback extractors enabled.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", papersect.Errorf(papersect.ENOTFOUND, "no article content: %v", err)
	}
	if result.ContentNode == nil {
		return "", papersect.Errorf(papersect.ENOTFOUND, "no article content")
	}

	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
