package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/papersect"
	"github.com/fwojciec/papersect/mock"
	psslog "github.com/fwojciec/papersect/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSegmenter(t *testing.T) {
	t.Parallel()

	names := []papersect.SectionName{papersect.Abstract, papersect.Methods}
	inner := &mock.Segmenter{
		SegmentFn: func(doc *papersect.Document) papersect.Sections {
			s := papersect.NewSections(names)
			s[0].Found = true
			return s
		},
		NamesFn: func() []papersect.SectionName { return names },
	}

	t.Run("logs found count and document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		seg := psslog.NewLoggingSegmenter(inner, debugLogger(&buf))
		doc := &papersect.Document{URL: "https://example.com/a.pdf", Kind: papersect.DocumentText, Content: "ABSTRACT"}

		sections := seg.Segment(doc)

		assert.True(t, sections.Found(papersect.Abstract))
		output := buf.String()
		assert.Contains(t, output, "segment")
		assert.Contains(t, output, "found=1")
		assert.Contains(t, output, "kind=text")
		assert.Contains(t, output, "bytes=8")
	})

	t.Run("handles nil document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		seg := psslog.NewLoggingSegmenter(inner, debugLogger(&buf))

		seg.Segment(nil)

		assert.Contains(t, buf.String(), "found=1")
	})

	t.Run("delegates names", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		seg := psslog.NewLoggingSegmenter(inner, debugLogger(&buf))

		assert.Equal(t, names, seg.Names())
	})
}

func TestLoggingLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs loaded document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentLoader{
			LoadFn: func(ctx context.Context, url string) (*papersect.Document, error) {
				return &papersect.Document{URL: url, Kind: papersect.DocumentHTML, Content: "<h2>x</h2>"}, nil
			},
		}

		doc, err := psslog.NewLoggingLoader(inner, debugLogger(&buf)).Load(context.Background(), "https://example.com/full")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/full", doc.URL)
		output := buf.String()
		assert.Contains(t, output, "load document")
		assert.Contains(t, output, "kind=html")
		assert.Contains(t, output, "bytes=10")
	})

	t.Run("logs error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentLoader{
			LoadFn: func(ctx context.Context, url string) (*papersect.Document, error) {
				return nil, papersect.Errorf(papersect.ENOTFOUND, "no PDF link")
			},
		}

		_, err := psslog.NewLoggingLoader(inner, debugLogger(&buf)).Load(context.Background(), "https://example.com/full")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=not_found")
	})
}
