package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/papersect"
)

// Mode selects how a full-text location is turned into a document.
type Mode int

const (
	// ModeHTML segments the full-text page markup itself.
	ModeHTML Mode = iota
	// ModePDF follows the page's PDF link and segments the extracted text.
	ModePDF
)

// ParseMode converts "html" or "pdf" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return ModeHTML, nil
	case "pdf":
		return ModePDF, nil
	default:
		return 0, papersect.Errorf(papersect.EINVALID, "unknown mode %q", s)
	}
}

// String returns the mode's flag value.
func (m Mode) String() string {
	if m == ModePDF {
		return "pdf"
	}
	return "html"
}

var _ papersect.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader resolves full-text locations into documents.
type DocumentLoader struct {
	Fetcher     papersect.Fetcher
	Mode        Mode
	PDFLinks    papersect.PDFLinkFinder    // required in ModePDF
	Extractor   papersect.TextExtractor    // required in ModePDF
	Content     papersect.ContentExtractor // optional, ModeHTML only
	RateLimiter papersect.DomainLimiter
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Load fetches the document at rawURL. In ModePDF a URL whose path already
// ends in ".pdf" is downloaded directly; otherwise the page is searched for
// a PDF link and ENOTFOUND is returned when none exists.
func (l *DocumentLoader) Load(ctx context.Context, rawURL string) (*papersect.Document, error) {
	if l.Mode != ModePDF {
		body, err := l.fetch(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return &papersect.Document{URL: rawURL, Kind: papersect.DocumentHTML, Content: l.mainContent(rawURL, body)}, nil
	}

	pdfURL := rawURL
	if !hasPDFPath(rawURL) {
		page, err := l.fetch(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		link, ok := l.PDFLinks.FindPDFLink(page, rawURL)
		if !ok {
			return nil, papersect.Errorf(papersect.ENOTFOUND, "no PDF link on %s", rawURL)
		}
		pdfURL = link
	}

	data, err := l.fetch(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	text, err := l.Extractor.ExtractText([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", pdfURL, err)
	}
	return &papersect.Document{URL: pdfURL, Kind: papersect.DocumentText, Content: text}, nil
}

// mainContent narrows body to its article markup when a content extractor
// is set. The whole page is kept when extraction fails.
func (l *DocumentLoader) mainContent(rawURL, body string) string {
	if l.Content == nil {
		return body
	}
	content, err := l.Content.ExtractContent(body)
	if err != nil {
		if l.Logger != nil {
			l.Logger("main content of %s: %v; using whole page", rawURL, err)
		}
		return body
	}
	return content
}

func (l *DocumentLoader) fetch(ctx context.Context, rawURL string) (string, error) {
	if err := waitFor(ctx, l.RateLimiter, rawURL); err != nil {
		return "", err
	}
	delays := l.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetry(ctx, rawURL, l.Fetcher.Fetch, l.Logger, delays)
}

func hasPDFPath(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}
