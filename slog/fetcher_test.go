package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/papersect/mock"
	psslog "github.com/fwojciec/papersect/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	const listing = "https://pubmed.ncbi.nlm.nih.gov/?term=sepsis&page=2"

	tests := []struct {
		name    string
		body    string
		err     error
		want    []string
		wantErr bool
	}{
		{
			name: "listing page",
			body: `<a class="docsum-title" href="/1/">A</a>`,
			want: []string{"msg=fetch", "url=" + `"` + listing + `"`, "bytes=40", "duration="},
		},
		{
			name:    "server error",
			err:     errors.New("status 503"),
			want:    []string{"msg=fetch", `err="status 503"`},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			inner := &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, listing, url)
					return tt.body, tt.err
				},
			}

			body, err := psslog.NewLoggingFetcher(inner, debugLogger(&buf)).Fetch(context.Background(), listing)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.body, body)
			}
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := 0
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed++
			return nil
		},
	}

	require.NoError(t, psslog.NewLoggingFetcher(inner, debugLogger(io.Discard)).Close())
	assert.Equal(t, 1, closed)
}

func debugLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
