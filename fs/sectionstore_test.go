package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/papersect"
	"github.com/fwojciec/papersect/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availableRecord(title string) *papersect.Record {
	rec := papersect.NewRecord(&papersect.Detail{
		URL:             "https://example.com/1/",
		Title:           title,
		Authors:         "Ann Lee",
		PublicationDate: "2021",
	}, []papersect.SectionName{papersect.Abstract, papersect.Methods})
	rec.Available = true
	rec.Sections[0] = papersect.Section{Name: papersect.Abstract, Found: true, Text: "Summary."}
	return rec
}

// Story: Atomic Section Files
// Section dumps go to a temp directory and replace the output on Close.

func TestSectionStore_WritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewSectionStore(base, "sections")

	// When I write an available record
	err := store.WriteRecord(context.Background(), availableRecord("Arsenic and Lungs"))

	// Then the file exists in the temp directory only
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "sections.tmp", "Arsenic and Lungs_sections.txt"))
	require.NoError(t, err, "file should exist in temp directory")
	_, err = os.Stat(filepath.Join(base, "sections"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until close")
}

func TestSectionStore_CloseCommits(t *testing.T) {
	t.Parallel()

	// Given a store with a written record and a stale output directory
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sections"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "sections", "old.txt"), []byte("old"), 0644))
	store := fs.NewSectionStore(base, "sections")
	require.NoError(t, store.WriteRecord(context.Background(), availableRecord("Paper")))

	// When I close
	require.NoError(t, store.Close())

	// Then the new file is in the final directory and the old one is gone
	content, err := os.ReadFile(filepath.Join(base, "sections", "Paper_sections.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Title: Paper\nAuthors: Ann Lee\nPublication Date: 2021\n\n"+
		"### Abstract ###\n\nSummary.\n\n"+
		"### Methods ###\n\n\n\n", string(content))
	_, err = os.Stat(filepath.Join(base, "sections", "old.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "sections.tmp"))
	assert.True(t, os.IsNotExist(err))

	// And closing again is a no-op
	require.NoError(t, store.Close())
	_, err = os.Stat(filepath.Join(base, "sections", "Paper_sections.txt"))
	require.NoError(t, err)
}

func TestSectionStore_AbortKeepsPreviousOutput(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sections"), 0755))
	store := fs.NewSectionStore(base, "sections")
	require.NoError(t, store.WriteRecord(context.Background(), availableRecord("Paper")))

	require.NoError(t, store.Abort())

	_, err := os.Stat(filepath.Join(base, "sections.tmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "sections"))
	require.NoError(t, err)
}

func TestSectionStore_SkipsAbsentRecords(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewSectionStore(base, "sections")
	rec := availableRecord("Paper")
	rec.Available = false

	require.NoError(t, store.WriteRecord(context.Background(), rec))
	require.NoError(t, store.Close())

	entries, err := os.ReadDir(filepath.Join(base, "sections"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSectionStore_DuplicateTitlesGetDistinctFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewSectionStore(base, "sections")

	require.NoError(t, store.WriteRecord(context.Background(), availableRecord("Same")))
	require.NoError(t, store.WriteRecord(context.Background(), availableRecord("Same")))
	require.NoError(t, store.Close())

	for _, name := range []string{"Same_sections.txt", "Same_2_sections.txt"} {
		_, err := os.Stat(filepath.Join(base, "sections", name))
		require.NoError(t, err, name)
	}
}

func TestSectionStore_SuffixedNameDoesNotOverwriteRealTitle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewSectionStore(base, "sections")

	for _, title := range []string{"A", "A", "A_2"} {
		require.NoError(t, store.WriteRecord(context.Background(), availableRecord(title)))
	}
	require.NoError(t, store.Close())

	entries, err := os.ReadDir(filepath.Join(base, "sections"))
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSectionStore_LongMultibyteTitle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewSectionStore(base, "sections")

	require.NoError(t, store.WriteRecord(context.Background(), availableRecord(strings.Repeat("砷", 120))))
	require.NoError(t, store.Close())

	entries, err := os.ReadDir(filepath.Join(base, "sections"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.LessOrEqual(t, len(entries[0].Name()), 255)
}

func TestSectionStore_RejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	store := fs.NewSectionStore(t.TempDir(), "sections")

	err := store.WriteRecord(context.Background(), &papersect.Record{})

	assert.Equal(t, papersect.EINVALID, papersect.ErrorCode(err))
}

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Plain title", "Plain title"},
		{`A/B: "C"?`, `A_B_ _C__`},
		{"  padded  ", "padded"},
		{"Ends with dot.", "Ends with dot"},
		{"", papersect.UnknownTitle},
		{"???", "___"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fs.SanitizeTitle(tt.in), tt.in)
	}

	long := fs.SanitizeTitle(strings.Repeat("x", 500))
	assert.Len(t, long, 180)

	// 2-byte runes straddle the budget, so the cut backs off to a boundary.
	multibyte := fs.SanitizeTitle("x" + strings.Repeat("é", 200))
	assert.LessOrEqual(t, len(multibyte), 180)
	assert.True(t, utf8.ValidString(multibyte))
	assert.Len(t, multibyte, 179)
}
