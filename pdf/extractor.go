// Package pdf extracts linear text from PDF documents using
// github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/papersect"
	pdflib "github.com/ledongthuc/pdf"
)

// Ensure Extractor implements papersect.TextExtractor at compile time.
var _ papersect.TextExtractor = (*Extractor)(nil)

// Extractor converts PDF bytes into text with one line per visual row and
// pages separated by form feeds.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text of every readable page. Pages whose content
// cannot be decoded are skipped. A document with no readable text is
// ENOTFOUND.
func (e *Extractor) ExtractText(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed objects.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = papersect.Errorf(papersect.EINVALID, "malformed PDF: %v", r)
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", papersect.Errorf(papersect.EINVALID, "open PDF: %v", err)
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines, err := pageLines(page)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\f")
		}
		buf.WriteString(strings.Join(lines, "\n"))
	}

	text = buf.String()
	if strings.TrimSpace(text) == "" {
		return "", papersect.Errorf(papersect.ENOTFOUND, "PDF has no extractable text")
	}
	return text, nil
}

// pageLines returns the page's rows top to bottom, falling back to the
// plain text stream when rows cannot be built.
func pageLines(page pdflib.Page) ([]string, error) {
	rows, err := page.GetTextByRow()
	if err != nil || len(rows) == 0 {
		plain, perr := page.GetPlainText(nil)
		if perr != nil {
			return nil, fmt.Errorf("page text: %w", perr)
		}
		return []string{plain}, nil
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		if line := strings.TrimSpace(b.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
