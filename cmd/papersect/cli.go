package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds the I/O handles for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Seed   string `arg:"" required:"" help:"Listing URL to start from, e.g. a search results page"`
	Output string `arg:"" required:"" help:"CSV file to write, one row per listed item"`

	Mode          string `short:"m" enum:"html,pdf" default:"html" help:"Segment the full-text page (html) or its linked PDF (pdf)"`
	Presence      bool   `help:"Write true/false per section instead of section text"`
	Extended      bool   `help:"Also detect Background, Objective, References, Acknowledgements and Funding"`
	InlineHeaders bool   `name:"inline-headers" help:"Accept headers followed by text on the same line in PDF text"`
	MainContent   string `name:"main-content" enum:"none,readability,trafilatura" default:"none" help:"Strip navigation and footers from full-text pages before segmenting (html mode)"`

	SectionsDir string `name:"sections-dir" help:"Write one <title>_sections.txt file per article into this directory"`
	DB          string `name:"db" env:"PAPERSECT_DB" help:"SQLite database to store records in"`
	Report      string `help:"Write a section presence bar chart PDF to this path"`

	Timeout        time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Delay          time.Duration `default:"1s" help:"Minimum delay between requests to the same host"`
	Retries        int           `default:"3" help:"Retries for detail and full-text pages, with doubling backoff from 1s"`
	MaxPages       int           `name:"max-pages" help:"Stop after this many listing pages (0 for no limit)"`
	SkipDuplicates bool          `name:"skip-duplicates" help:"Skip items already listed on an earlier page"`
	UserAgent      string        `name:"user-agent" env:"PAPERSECT_USER_AGENT" help:"User-Agent header for every request"`

	CountTokens    bool   `name:"count-tokens" help:"Count tokens of the section text with the local Gemini tokenizer"`
	TokenizerModel string `name:"tokenizer-model" default:"gemini-2.0-flash" help:"Tokenizer model for --count-tokens"`

	Verbose bool `short:"v" help:"Log every request and record"`
}

// retryDelays returns n doubling delays starting at one second. The result
// is non-nil so that zero retries disables retrying.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}
