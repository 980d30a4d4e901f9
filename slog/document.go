package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/papersect"
)

// Ensure LoggingSegmenter implements papersect.Segmenter.
var _ papersect.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter with debug logging.
type LoggingSegmenter struct {
	next   papersect.Segmenter
	logger *slog.Logger
}

// NewLoggingSegmenter creates a new LoggingSegmenter.
func NewLoggingSegmenter(next papersect.Segmenter, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, logger: logger}
}

// Segment delegates to the wrapped segmenter and logs the detected sections.
func (s *LoggingSegmenter) Segment(doc *papersect.Document) (sections papersect.Sections) {
	defer func(begin time.Time) {
		attrs := []any{
			"found", sections.CountFound(),
			"duration", time.Since(begin),
		}
		if doc != nil {
			attrs = append(attrs, "url", doc.URL, "kind", doc.Kind.String(), "bytes", len(doc.Content))
		}
		s.logger.Debug("segment", attrs...)
	}(time.Now())
	return s.next.Segment(doc)
}

// Names delegates to the wrapped segmenter.
func (s *LoggingSegmenter) Names() []papersect.SectionName {
	return s.next.Names()
}

// Ensure LoggingLoader implements papersect.DocumentLoader.
var _ papersect.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with debug logging.
type LoggingLoader struct {
	next   papersect.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next papersect.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *LoggingLoader) Load(ctx context.Context, url string) (doc *papersect.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if doc != nil {
			attrs = append(attrs, "kind", doc.Kind.String(), "bytes", len(doc.Content))
		}
		if err != nil {
			attrs = append(attrs, "code", papersect.ErrorCode(err), "err", err)
		}
		l.logger.Debug("load document", attrs...)
	}(time.Now())
	return l.next.Load(ctx, url)
}
