package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/papersect"
	"github.com/fwojciec/papersect/crawl"
	pscsv "github.com/fwojciec/papersect/csv"
	"github.com/fwojciec/papersect/fs"
	"github.com/fwojciec/papersect/gemini"
	"github.com/fwojciec/papersect/gofpdf"
	"github.com/fwojciec/papersect/goquery"
	pshttp "github.com/fwojciec/papersect/http"
	"github.com/fwojciec/papersect/pdf"
	"github.com/fwojciec/papersect/readability"
	psslog "github.com/fwojciec/papersect/slog"
	"github.com/fwojciec/papersect/sqlite"
	"github.com/fwojciec/papersect/trafilatura"
)

// aborter is implemented by sinks that can discard partial output.
type aborter interface {
	Abort() error
}

// Run crawls the listing and writes every configured output.
func (c *CLI) Run(deps *Dependencies) error {
	ctx := deps.Ctx

	logger := newLogger(deps.Stderr, c.Verbose)
	logf := func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}

	if _, err := crawl.NewCursor(c.Seed); err != nil {
		return err
	}
	mode, err := crawl.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	table := papersect.DefaultPatterns()
	if c.Extended {
		table = papersect.ExtendedPatterns()
	}
	segmenter := goquery.NewSegmenter(table)
	segmenter.Scanner.InlineHeaders = c.InlineHeaders
	segmenter.Scanner.Presence = c.Presence && c.SectionsDir == "" && !c.CountTokens
	names := segmenter.Names()

	fetcher := psslog.NewLoggingFetcher(
		pshttp.NewFetcher(pshttp.WithTimeout(c.Timeout), pshttp.WithUserAgent(c.UserAgent)),
		logger,
	)
	defer fetcher.Close()

	limiter := crawl.NewDomainLimiterEvery(c.Delay)
	delays := retryDelays(c.Retries)

	loader := &crawl.DocumentLoader{
		Fetcher:     fetcher,
		Mode:        mode,
		PDFLinks:    goquery.NewPDFLinkFinder(),
		Extractor:   pdf.NewExtractor(),
		RateLimiter: limiter,
		RetryDelays: delays,
		Logger:      logf,
	}
	switch c.MainContent {
	case "readability":
		loader.Content = readability.NewExtractor()
	case "trafilatura":
		loader.Content = trafilatura.NewExtractor()
	}

	var tokens papersect.TokenCounter
	if c.CountTokens {
		tc, err := gemini.NewTokenCounter(c.TokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		tokens = tc
	}

	outputs, err := c.openOutputs(deps, names, mode)
	if err != nil {
		return err
	}
	defer outputs.closeDB()

	tally := papersect.NewTally(names)
	ctrl := &crawl.Controller{
		Fetcher:        fetcher,
		Listings:       goquery.NewListingParser(),
		Details:        goquery.NewDetailParser(),
		Documents:      psslog.NewLoggingLoader(loader, logger),
		Segmenter:      psslog.NewLoggingSegmenter(segmenter, logger),
		Sink:           psslog.NewLoggingSink(outputs.sinks, logger),
		RateLimiter:    limiter,
		TokenCounter:   tokens,
		Logger:         logf,
		RetryDelays:    delays,
		MaxPages:       c.MaxPages,
		SkipDuplicates: c.SkipDuplicates,
	}

	result, err := ctrl.Run(ctx, c.Seed, func(e crawl.ProgressEvent) {
		printProgress(deps, logger, e, len(names))
		if e.Type == crawl.ProgressRecord {
			tally.Add(e.Record)
		}
	})
	if err != nil {
		if papersect.ErrorCode(err) != papersect.ELISTING || result == nil || result.Pages == 0 {
			outputs.abort()
			return err
		}
		fmt.Fprintf(deps.Stderr, "warning: crawl stopped early: %s\n", papersect.ErrorMessage(err))
	}

	if err := outputs.sinks.Close(); err != nil {
		return fmt.Errorf("failed to close outputs: %w", err)
	}

	fmt.Fprintln(deps.Stdout, crawl.FormatResult(result))
	if outputs.runID != "" {
		fmt.Fprintf(deps.Stdout, "Stored as run %s\n", outputs.runID)
		if stored, err := outputs.records.SectionTally(ctx, outputs.runID, names); err == nil {
			tally = stored
		} else {
			logger.Warn("load stored tally", "err", err)
		}
	}
	printTally(deps.Stdout, tally)

	if c.Report != "" {
		if err := gofpdf.NewChartRenderer().RenderFile(c.Report, tally); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Report written to %s\n", c.Report)
	}

	return nil
}

// outputs holds the sinks records are written to.
type outputs struct {
	sinks   papersect.MultiSink
	db      *sqlite.DB
	records *sqlite.RecordService
	runID   string
}

func (c *CLI) openOutputs(deps *Dependencies, names []papersect.SectionName, mode crawl.Mode) (*outputs, error) {
	o := &outputs{}

	var opts []pscsv.Option
	if c.Presence {
		opts = append(opts, pscsv.WithPresence())
	}
	sink, err := pscsv.Create(c.Output, names, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	o.sinks = append(o.sinks, sink)

	if c.SectionsDir != "" {
		dir, err := filepath.Abs(c.SectionsDir)
		if err != nil {
			o.abort()
			return nil, err
		}
		o.sinks = append(o.sinks, fs.NewSectionStore(filepath.Dir(dir), filepath.Base(dir)))
	}

	if c.DB != "" {
		o.db = sqlite.NewDB(c.DB)
		if err := o.db.Open(); err != nil {
			o.db = nil
			o.abort()
			fmt.Fprintln(deps.Stderr, "Hint: Set PAPERSECT_DB to use a different database path")
			return nil, fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		run := &papersect.Run{SeedURL: c.Seed, Mode: mode.String()}
		if err := sqlite.NewRunService(o.db).CreateRun(deps.Ctx, run); err != nil {
			o.abort()
			o.closeDB()
			return nil, fmt.Errorf("failed to create run: %w", err)
		}
		o.records = sqlite.NewRecordService(o.db)
		o.runID = run.ID
		o.sinks = append(o.sinks, o.records.Sink(run.ID))
	}

	return o, nil
}

// abort discards partial directory output and closes the other sinks.
func (o *outputs) abort() {
	for _, s := range o.sinks {
		if a, ok := s.(aborter); ok {
			_ = a.Abort()
			continue
		}
		_ = s.Close()
	}
}

func (o *outputs) closeDB() {
	if o.db != nil {
		_ = o.db.Close()
	}
}

func printProgress(deps *Dependencies, logger *slog.Logger, e crawl.ProgressEvent, sections int) {
	switch e.Type {
	case crawl.ProgressListing:
		fmt.Fprintf(deps.Stdout, "Page %d: %d items\n", e.Page, e.Items)
	case crawl.ProgressRecord:
		rec := e.Record
		if rec.Available {
			fmt.Fprintf(deps.Stdout, "[%d] %s: %d/%d sections\n", rec.Position+1, rec.Title, rec.Sections.CountFound(), sections)
		} else {
			fmt.Fprintf(deps.Stdout, "[%d] %s: no full text\n", rec.Position+1, rec.Title)
		}
	case crawl.ProgressItemFailed:
		fmt.Fprintf(deps.Stderr, "skip %s: %v\n", crawl.TruncateURL(e.URL, 60), e.Error)
	case crawl.ProgressDuplicate:
		logger.Debug("duplicate item", "url", e.URL, "page", e.Page)
	case crawl.ProgressFinished:
		if e.Error != nil {
			fmt.Fprintf(deps.Stderr, "warning: pagination stopped after page %d: %v\n", e.Page, e.Error)
		}
	}
}
