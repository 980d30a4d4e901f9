package papersect

import (
	"context"
	"errors"
)

// Record is the segmentation outcome for one listed item. It is the only
// value handed to sinks.
type Record struct {
	// Position is the zero-based emission order across the whole crawl.
	Position int `json:"position"`

	URL             string `json:"url"`
	Title           string `json:"title"`
	Authors         string `json:"authors"`
	PublicationDate string `json:"publicationDate"`
	FullTextURL     string `json:"fullTextUrl,omitempty"`

	// Available is false when no full-text document could be resolved.
	// Such records have every section absent.
	Available bool `json:"available"`

	// ContentHash identifies the full-text content, empty when unavailable.
	ContentHash string `json:"contentHash,omitempty"`

	// Tokens is the token count across all section text, when counted.
	Tokens int `json:"tokens,omitempty"`

	Sections Sections `json:"sections"`
}

// NewRecord returns a record for detail with every section absent.
func NewRecord(detail *Detail, names []SectionName) *Record {
	rec := &Record{
		URL:             detail.URL,
		Title:           detail.Title,
		Authors:         detail.Authors,
		PublicationDate: detail.PublicationDate,
		FullTextURL:     detail.FullTextURL,
		Sections:        NewSections(names),
	}
	if rec.Title == "" {
		rec.Title = UnknownTitle
	}
	return rec
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if len(r.Sections) == 0 {
		return Errorf(EINVALID, "record sections required")
	}
	return nil
}

// RecordSink accepts finished records in emission order.
type RecordSink interface {
	// WriteRecord persists rec. Records arrive in listing order.
	WriteRecord(ctx context.Context, rec *Record) error

	// Close flushes and releases the sink.
	Close() error
}

// MultiSink writes every record to each sink in turn.
type MultiSink []RecordSink

// WriteRecord stops at the first failing sink.
func (m MultiSink) WriteRecord(ctx context.Context, rec *Record) error {
	for _, s := range m {
		if err := s.WriteRecord(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
