package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papersect"
)

// Ensure Segmenter implements papersect.Segmenter at compile time.
var _ papersect.Segmenter = (*Segmenter)(nil)

// Segmenter partitions documents into sections. HTML documents are scanned
// by heading structure and text documents line by line.
type Segmenter struct {
	Scanner *papersect.Scanner
}

// NewSegmenter returns a Segmenter scanning with table.
func NewSegmenter(table *papersect.PatternTable) *Segmenter {
	return &Segmenter{Scanner: papersect.NewScanner(table)}
}

// Segment never fails. Markup that cannot be parsed yields no sections.
func (s *Segmenter) Segment(doc *papersect.Document) papersect.Sections {
	if doc == nil {
		return papersect.NewSections(s.Names())
	}

	switch doc.Kind {
	case papersect.DocumentText:
		return s.Scanner.ScanText(doc.Content)
	default:
		d, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Content))
		if err != nil {
			return papersect.NewSections(s.Names())
		}
		return s.Scanner.ScanBlocks(blocks(d))
	}
}

// Names returns the section names of the scanner's table.
func (s *Segmenter) Names() []papersect.SectionName {
	return s.Scanner.Table.Names()
}
