package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fwojciec/papersect"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// newLogger returns a tint handler logger writing to w, colored only when w
// is a terminal.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}))
}

// printTally writes one row per section with its detection count and share
// of all records.
func printTally(w io.Writer, tally *papersect.Tally) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Section", "Found", "Share"})
	for _, name := range tally.Names() {
		n := tally.Count(name)
		share := "-"
		if tally.Records > 0 {
			share = fmt.Sprintf("%.0f%%", 100*float64(n)/float64(tally.Records))
		}
		t.AppendRow(table.Row{string(name), fmt.Sprintf("%d/%d", n, tally.Records), share})
	}
	t.Render()
}
