package papersect

import "context"

// DocumentKind tells the segmenter how to read a document's content.
type DocumentKind int

// Document kinds.
const (
	// DocumentHTML is markup scanned by heading elements.
	DocumentHTML DocumentKind = iota
	// DocumentText is linear text, e.g. extracted from a PDF, scanned by line.
	DocumentText
)

// String returns a readable name for the kind.
func (k DocumentKind) String() string {
	switch k {
	case DocumentHTML:
		return "html"
	case DocumentText:
		return "text"
	default:
		return "unknown"
	}
}

// Document is the resolved full text of one item.
type Document struct {
	URL     string
	Kind    DocumentKind
	Content string
}

// DocumentLoader resolves a full-text location into a Document.
type DocumentLoader interface {
	// Load fetches and prepares the document at url.
	// Returns ENOTFOUND when the location offers no usable document.
	Load(ctx context.Context, url string) (*Document, error)
}

// Segmenter partitions a document into sections.
// Implementations never fail on malformed content; a document without
// recognizable headers yields Sections with nothing found.
type Segmenter interface {
	Segment(doc *Document) Sections

	// Names returns the section names every result carries, in order.
	Names() []SectionName
}

// TextExtractor converts a binary document such as a PDF into linear text,
// one line per text line, pages separated by form feeds.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// PDFLinkFinder locates the PDF download link on a full-text page.
type PDFLinkFinder interface {
	// FindPDFLink returns the absolute PDF URL, resolved against pageURL.
	// The bool result is false when the page offers no PDF.
	FindPDFLink(html string, pageURL string) (string, bool)
}

// ContentExtractor narrows a full-text page to the markup of its main
// article, dropping navigation, sidebars and footers.
type ContentExtractor interface {
	// ExtractContent returns the article markup. Returns ENOTFOUND when no
	// main content can be identified.
	ExtractContent(html string) (string, error)
}
