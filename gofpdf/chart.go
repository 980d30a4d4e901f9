// Package gofpdf renders section tallies as bar-chart PDF reports using
// github.com/jung-kurt/gofpdf.
package gofpdf

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fwojciec/papersect"
	"github.com/jung-kurt/gofpdf"
)

// DefaultChartTitle is the heading printed above the chart.
const DefaultChartTitle = "Presence of Sections in Papers"

// Page geometry in millimetres on a landscape A4 page.
const (
	plotLeft   = 35.0
	plotTop    = 35.0
	plotWidth  = 235.0
	plotHeight = 120.0
	barRatio   = 0.6
)

// ChartRenderer draws one bar per tallied section, scaled to the largest
// count.
type ChartRenderer struct {
	Title string
}

// NewChartRenderer returns a renderer with the default title.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Title: DefaultChartTitle}
}

// Render writes the chart for tally to w as a single-page PDF.
func (r *ChartRenderer) Render(w io.Writer, tally *papersect.Tally) error {
	names := tally.Names()
	if len(names) == 0 {
		return papersect.Errorf(papersect.EINVALID, "tally has no sections")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(plotLeft, 12)
	pdf.CellFormat(plotWidth, 10, r.Title, "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(plotLeft, 21)
	summary := fmt.Sprintf("%d records, %d with full text", tally.Records, tally.Available)
	pdf.CellFormat(plotWidth, 6, summary, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	top := yScale(tally.Max())
	r.drawAxes(pdf, top)

	slot := plotWidth / float64(len(names))
	barWidth := slot * barRatio
	bottom := plotTop + plotHeight

	for i, name := range names {
		count := tally.Count(name)
		h := plotHeight * float64(count) / float64(top)
		x := plotLeft + float64(i)*slot + (slot-barWidth)/2

		pdf.SetFillColor(135, 206, 235)
		if h > 0 {
			pdf.Rect(x, bottom-h, barWidth, h, "F")
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(x, bottom-h-6)
		pdf.CellFormat(barWidth, 5, strconv.Itoa(count), "", 0, "C", false, 0, "")

		// Labels are rotated 45 degrees around their anchor below the bar.
		labelX := x + barWidth/2
		labelY := bottom + 5
		pdf.TransformBegin()
		pdf.TransformRotate(45, labelX, labelY)
		pdf.Text(labelX-pdf.GetStringWidth(string(name)), labelY, string(name))
		pdf.TransformEnd()
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(plotLeft, bottom+30)
	pdf.CellFormat(plotWidth, 6, "Sections", "", 0, "C", false, 0, "")

	pdf.TransformBegin()
	pdf.TransformRotate(90, plotLeft-18, plotTop+plotHeight/2)
	pdf.Text(plotLeft-18-pdf.GetStringWidth("Count")/2, plotTop+plotHeight/2, "Count")
	pdf.TransformEnd()

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// RenderFile writes the chart for tally to path.
func (r *ChartRenderer) RenderFile(path string, tally *papersect.Tally) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return r.Render(f, tally)
}

func (r *ChartRenderer) drawAxes(pdf *gofpdf.Fpdf, top int) {
	bottom := plotTop + plotHeight

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(plotLeft, plotTop, plotLeft, bottom)
	pdf.Line(plotLeft, bottom, plotLeft+plotWidth, bottom)

	step := tickStep(top)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetLineWidth(0.1)
	for v := 0; v <= top; v += step {
		y := bottom - plotHeight*float64(v)/float64(top)
		pdf.SetDrawColor(220, 220, 220)
		if v > 0 {
			pdf.Line(plotLeft, y, plotLeft+plotWidth, y)
		}
		pdf.SetDrawColor(0, 0, 0)
		pdf.Line(plotLeft-1.5, y, plotLeft, y)
		pdf.SetXY(plotLeft-12, y-2)
		pdf.CellFormat(10, 4, strconv.Itoa(v), "", 0, "R", false, 0, "")
	}
}

// yScale returns the axis maximum for the largest count, at least 1.
func yScale(maxCount int) int {
	if maxCount < 1 {
		return 1
	}
	step := tickStep(maxCount)
	return (maxCount + step - 1) / step * step
}

// tickStep picks a 1, 2 or 5 multiple giving at most ten ticks.
func tickStep(n int) int {
	step := 1
	for {
		for _, m := range []int{1, 2, 5} {
			if n/(step*m) <= 10 {
				return step * m
			}
		}
		step *= 10
	}
}
