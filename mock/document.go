package mock

import (
	"context"

	"github.com/fwojciec/papersect"
)

var _ papersect.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of papersect.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, url string) (*papersect.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context, url string) (*papersect.Document, error) {
	return l.LoadFn(ctx, url)
}

var _ papersect.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of papersect.Segmenter.
type Segmenter struct {
	SegmentFn func(doc *papersect.Document) papersect.Sections
	NamesFn   func() []papersect.SectionName
}

func (s *Segmenter) Segment(doc *papersect.Document) papersect.Sections {
	return s.SegmentFn(doc)
}

func (s *Segmenter) Names() []papersect.SectionName {
	return s.NamesFn()
}

var _ papersect.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of papersect.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(data []byte) (string, error)
}

func (e *TextExtractor) ExtractText(data []byte) (string, error) {
	return e.ExtractTextFn(data)
}

var _ papersect.PDFLinkFinder = (*PDFLinkFinder)(nil)

// PDFLinkFinder is a mock implementation of papersect.PDFLinkFinder.
type PDFLinkFinder struct {
	FindPDFLinkFn func(html string, pageURL string) (string, bool)
}

func (f *PDFLinkFinder) FindPDFLink(html string, pageURL string) (string, bool) {
	return f.FindPDFLinkFn(html, pageURL)
}

var _ papersect.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of papersect.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string) (string, error)
}

func (e *ContentExtractor) ExtractContent(html string) (string, error) {
	return e.ExtractContentFn(html)
}
