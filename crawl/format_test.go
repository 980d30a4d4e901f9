package crawl_test

import (
	"testing"

	"github.com/fwojciec/papersect/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	const article = "https://pubmed.ncbi.nlm.nih.gov/38012345/"

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{name: "fits", url: article, maxLen: 60, want: article},
		{name: "exact length", url: article, maxLen: len(article), want: article},
		{name: "keeps the tail", url: article, maxLen: 15, want: "...ov/38012345/"},
		{name: "zero", url: article, maxLen: 0, want: ""},
		{name: "negative", url: article, maxLen: -1, want: ""},
		{name: "too short for ellipsis", url: article, maxLen: 3, want: "htt"},
		{name: "short URL, small max", url: "ab", maxLen: 3, want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.TruncateURL(tt.url, tt.maxLen))
		})
	}
}

func TestFormatResult(t *testing.T) {
	t.Parallel()

	t.Run("basic counts", func(t *testing.T) {
		t.Parallel()
		r := &crawl.Result{Pages: 3, Records: 60, Available: 52, Absent: 8}
		assert.Equal(t, "3 pages, 60 records (52 with full text, 8 absent)", crawl.FormatResult(r))
	})

	t.Run("singular with failures, duplicates and tokens", func(t *testing.T) {
		t.Parallel()
		r := &crawl.Result{Pages: 1, Records: 1, Absent: 1, Failed: 1, Duplicates: 1, Tokens: 1500}
		assert.Equal(t, "1 page, 1 record (0 with full text, 1 absent, 1 failed, 1 duplicate skipped), ~2k tokens", crawl.FormatResult(r))
	})

	t.Run("plural duplicates", func(t *testing.T) {
		t.Parallel()
		r := &crawl.Result{Pages: 2, Records: 4, Available: 4, Duplicates: 3}
		assert.Equal(t, "2 pages, 4 records (4 with full text, 0 absent, 3 duplicates skipped)", crawl.FormatResult(r))
	})
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~500 tokens", crawl.FormatTokens(500))
	assert.Equal(t, "~2k tokens", crawl.FormatTokens(1500))
	assert.Equal(t, "~10k tokens", crawl.FormatTokens(10000))
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ef46db3751d8e999", crawl.ComputeHash(""))
	assert.Equal(t, crawl.ComputeHash("ABSTRACT\nWe studied"), crawl.ComputeHash("ABSTRACT\nWe studied"))
	assert.NotEqual(t, crawl.ComputeHash("Methods"), crawl.ComputeHash("Results"))
}
