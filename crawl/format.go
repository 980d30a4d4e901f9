package crawl

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash returns the hex xxhash64 of content. Records store it so
// unchanged full text can be recognised across runs.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// TruncateURL fits url into maxLen bytes for progress output. The tail is
// kept since it carries the article ID.
func TruncateURL(url string, maxLen int) string {
	switch {
	case maxLen <= 0:
		return ""
	case maxLen < 4:
		return url[:min(len(url), maxLen)]
	case len(url) <= maxLen:
		return url
	}
	return "..." + url[len(url)-(maxLen-3):]
}

// FormatTokens rounds tokens to the nearest thousand once it passes 1000.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// FormatResult summarizes a walk in one line, e.g.
// "3 pages, 60 records (52 with full text, 8 absent, 2 failed)".
func FormatResult(r *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s, %d %s (%d with full text, %d absent",
		r.Pages, plural(r.Pages, "page"), r.Records, plural(r.Records, "record"), r.Available, r.Absent)
	if r.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", r.Failed)
	}
	if r.Duplicates > 0 {
		fmt.Fprintf(&b, ", %d %s skipped", r.Duplicates, plural(r.Duplicates, "duplicate"))
	}
	b.WriteString(")")
	if r.Tokens > 0 {
		b.WriteString(", ")
		b.WriteString(FormatTokens(r.Tokens))
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
