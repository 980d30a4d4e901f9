package crawl_test

import (
	"testing"

	"github.com/fwojciec/papersect"
	"github.com/fwojciec/papersect/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCursor(t *testing.T) {
	t.Parallel()

	t.Run("absent page is page 1", func(t *testing.T) {
		t.Parallel()

		c, err := crawl.NewCursor("https://pubmed.ncbi.nlm.nih.gov/?term=asthma&sort=date")

		require.NoError(t, err)
		assert.Equal(t, 1, c.Page)
		assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/?term=asthma&sort=date", c.URL)
	})

	t.Run("explicit page", func(t *testing.T) {
		t.Parallel()

		c, err := crawl.NewCursor("https://example.com/search?page=4&q=x")

		require.NoError(t, err)
		assert.Equal(t, 4, c.Page)
	})

	t.Run("invalid page values", func(t *testing.T) {
		t.Parallel()

		for _, seed := range []string{
			"https://example.com/search?page=abc",
			"https://example.com/search?page=0",
			"https://example.com/search?page=-2",
		} {
			_, err := crawl.NewCursor(seed)
			assert.Equal(t, papersect.EINVALID, papersect.ErrorCode(err), seed)
		}
	})

	t.Run("blank page is page 1", func(t *testing.T) {
		t.Parallel()

		for _, seed := range []string{
			"https://example.com/search?page=&q=x",
			"https://example.com/search?q=x&page",
		} {
			c, err := crawl.NewCursor(seed)
			require.NoError(t, err, seed)
			assert.Equal(t, 1, c.Page, seed)
		}
	})

	t.Run("relative seed", func(t *testing.T) {
		t.Parallel()

		_, err := crawl.NewCursor("/search?q=x")

		assert.Equal(t, papersect.EINVALID, papersect.ErrorCode(err))
	})
}

func TestCursor_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seed     string
		wantURL  string
		wantPage int
	}{
		{
			name:     "appends page 2 when absent",
			seed:     "https://pubmed.ncbi.nlm.nih.gov/?term=(p42es017198[Grant+Number])&sort=date",
			wantURL:  "https://pubmed.ncbi.nlm.nih.gov/?term=(p42es017198[Grant+Number])&sort=date&page=2",
			wantPage: 2,
		},
		{
			name:     "increments in place keeping other parameters and order",
			seed:     "https://example.com/s?z=1&page=3&a=%20b&a=c",
			wantURL:  "https://example.com/s?z=1&page=4&a=%20b&a=c",
			wantPage: 4,
		},
		{
			name:     "no query at all",
			seed:     "https://example.com/list",
			wantURL:  "https://example.com/list?page=2",
			wantPage: 2,
		},
		{
			name:     "fragment preserved",
			seed:     "https://example.com/list?q=x#results",
			wantURL:  "https://example.com/list?q=x&page=2#results",
			wantPage: 2,
		},
		{
			name:     "blank page is rewritten in place",
			seed:     "https://example.com/list?page=&q=x",
			wantURL:  "https://example.com/list?page=2&q=x",
			wantPage: 2,
		},
		{
			name:     "bare page key is rewritten in place",
			seed:     "https://example.com/list?q=x&page",
			wantURL:  "https://example.com/list?q=x&page=2",
			wantPage: 2,
		},
		{
			name:     "valueless parameters kept verbatim",
			seed:     "https://example.com/list?flag&page=9",
			wantURL:  "https://example.com/list?flag&page=10",
			wantPage: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := crawl.NewCursor(tt.seed)
			require.NoError(t, err)

			next, err := c.Next()

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, next.URL)
			assert.Equal(t, tt.wantPage, next.Page)
		})
	}
}

func TestCursor_Next_is_monotonic(t *testing.T) {
	t.Parallel()

	c, err := crawl.NewCursor("https://example.com/s?term=a&sort=date")
	require.NoError(t, err)

	for want := 2; want <= 25; want++ {
		next, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, next.Page)
		assert.Greater(t, next.Page, c.Page)
		c = next
	}
	assert.Equal(t, "https://example.com/s?term=a&sort=date&page=25", c.URL)
}

func TestCursor_Next_invalid_page(t *testing.T) {
	t.Parallel()

	c := &crawl.Cursor{URL: "https://example.com/s?page=x", Page: 1}

	_, err := c.Next()

	assert.Equal(t, papersect.EINVALID, papersect.ErrorCode(err))
}
