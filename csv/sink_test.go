package csv_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/papersect"
	pscsv "github.com/fwojciec/papersect/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []papersect.SectionName{papersect.Abstract, papersect.Methods, papersect.Results}

func record(title string) *papersect.Record {
	rec := papersect.NewRecord(&papersect.Detail{URL: "https://example.com/" + title, Title: title}, names)
	rec.Sections[0] = papersect.Section{Name: papersect.Abstract, Found: true, Text: "  We, \"quoted\"\nstudied.  "}
	rec.Sections[2] = papersect.Section{Name: papersect.Results, Found: true}
	return rec
}

func readAll(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestSink_TextMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := pscsv.NewSink(&buf, names)
	require.NoError(t, err)

	require.NoError(t, s.WriteRecord(context.Background(), record("First")))
	require.NoError(t, s.WriteRecord(context.Background(), record("Second")))
	require.NoError(t, s.Close())

	assert.Equal(t, [][]string{
		{"Title", "Abstract", "Methods", "Results"},
		{"First", "We, \"quoted\"\nstudied.", "", ""},
		{"Second", "We, \"quoted\"\nstudied.", "", ""},
	}, readAll(t, buf.Bytes()))
}

func TestSink_PresenceMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := pscsv.NewSink(&buf, names, pscsv.WithPresence())
	require.NoError(t, err)

	require.NoError(t, s.WriteRecord(context.Background(), record("First")))

	assert.Equal(t, [][]string{
		{"Title", "Abstract", "Methods", "Results"},
		{"First", "true", "false", "true"},
	}, readAll(t, buf.Bytes()))
}

func TestSink_HeaderWrittenOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := pscsv.NewSink(&buf, names)
	require.NoError(t, err)

	assert.Equal(t, "Title,Abstract,Methods,Results\n", buf.String())
}

func TestSink_RowsAreFlushedImmediately(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := pscsv.NewSink(&buf, names, pscsv.WithPresence())
	require.NoError(t, err)

	require.NoError(t, s.WriteRecord(context.Background(), record("First")))

	assert.Len(t, readAll(t, buf.Bytes()), 2, "row visible before Close")
}

func TestSink_RejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := pscsv.NewSink(&buf, names)
	require.NoError(t, err)

	err = s.WriteRecord(context.Background(), &papersect.Record{Title: "x"})

	assert.Equal(t, papersect.EINVALID, papersect.ErrorCode(err))
}

func TestCreate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	s, err := pscsv.Create(path, names, pscsv.WithPresence())
	require.NoError(t, err)
	require.NoError(t, s.WriteRecord(context.Background(), record("First")))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title,Abstract,Methods,Results\nFirst,true,false,true\n", string(data))
}
