// Package csv writes records as CSV rows: a Title column followed by one
// column per section.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/papersect"
)

// Ensure Sink implements papersect.RecordSink at compile time.
var _ papersect.RecordSink = (*Sink)(nil)

// Sink appends one row per record and flushes after every row, so a run
// that stops early leaves every emitted record on disk.
type Sink struct {
	w        *csv.Writer
	closer   io.Closer
	names    []papersect.SectionName
	presence bool
}

// Option configures a Sink.
type Option func(*Sink)

// WithPresence writes "true" or "false" per section instead of its text.
func WithPresence() Option {
	return func(s *Sink) {
		s.presence = true
	}
}

// NewSink writes the header row to w and returns the sink. If w is an
// io.Closer it is closed by Close.
func NewSink(w io.Writer, names []papersect.SectionName, opts ...Option) (*Sink, error) {
	s := &Sink{
		w:     csv.NewWriter(w),
		names: append([]papersect.SectionName(nil), names...),
	}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	for _, opt := range opts {
		opt(s)
	}

	header := make([]string, 0, len(names)+1)
	header = append(header, "Title")
	for _, name := range names {
		header = append(header, string(name))
	}
	if err := s.writeRow(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return s, nil
}

// Create truncates or creates the file at path and returns a Sink writing
// to it.
func Create(path string, names []papersect.SectionName, opts ...Option) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s, err := NewSink(f, names, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// WriteRecord appends rec as one row.
func (s *Sink) WriteRecord(ctx context.Context, rec *papersect.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	row := make([]string, 0, len(s.names)+1)
	row = append(row, rec.Title)
	for _, name := range s.names {
		sec := rec.Sections.Get(name)
		if s.presence {
			row = append(row, strconv.FormatBool(sec.Found))
		} else {
			row = append(row, strings.TrimSpace(sec.Text))
		}
	}
	return s.writeRow(row)
}

func (s *Sink) writeRow(row []string) error {
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// Close flushes buffered rows and closes the underlying writer.
func (s *Sink) Close() error {
	s.w.Flush()
	err := s.w.Error()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
