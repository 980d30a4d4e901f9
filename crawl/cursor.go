package crawl

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/papersect"
)

// pageParam is the query parameter that selects a listing page.
const pageParam = "page"

// Cursor is the position of a paginated walk: the listing URL to fetch and
// the page number it represents.
type Cursor struct {
	URL  string
	Page int
}

// NewCursor derives the starting cursor from a seed URL. A seed without a
// page parameter, or with a blank one, is page 1. Any other page value that
// is not a positive integer is EINVALID.
func NewCursor(seedURL string) (*Cursor, error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return nil, papersect.Errorf(papersect.EINVALID, "invalid seed URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, papersect.Errorf(papersect.EINVALID, "seed URL must be absolute: %q", seedURL)
	}

	segments := splitQuery(u.RawQuery)
	page := 1
	if i := pageSegment(segments); i >= 0 {
		page, err = parsePage(segments[i])
		if err != nil {
			return nil, err
		}
	}
	return &Cursor{URL: u.String(), Page: page}, nil
}

// Next returns the cursor for the following page. Only the page parameter
// changes; every other query segment keeps its raw text and position. When
// the URL has no page parameter one is appended.
func (c *Cursor) Next() (*Cursor, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, papersect.Errorf(papersect.EINVALID, "invalid cursor URL: %v", err)
	}

	segments := splitQuery(u.RawQuery)
	var next int
	if i := pageSegment(segments); i >= 0 {
		current, err := parsePage(segments[i])
		if err != nil {
			return nil, err
		}
		next = current + 1
		key, _, _ := strings.Cut(segments[i], "=")
		segments[i] = key + "=" + strconv.Itoa(next)
	} else {
		next = 2
		segments = append(segments, pageParam+"="+strconv.Itoa(next))
	}

	u.RawQuery = strings.Join(segments, "&")
	return &Cursor{URL: u.String(), Page: next}, nil
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "&")
}

// pageSegment returns the index of the first page segment, or -1.
func pageSegment(segments []string) int {
	for i, seg := range segments {
		key, _, _ := strings.Cut(seg, "=")
		if k, err := url.QueryUnescape(key); err == nil && k == pageParam {
			return i
		}
	}
	return -1
}

func parsePage(segment string) (int, error) {
	_, raw, _ := strings.Cut(segment, "=")
	value, err := url.QueryUnescape(raw)
	if err != nil {
		return 0, papersect.Errorf(papersect.EINVALID, "invalid page parameter %q", raw)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, papersect.Errorf(papersect.EINVALID, "invalid page parameter %q", raw)
	}
	return page, nil
}
