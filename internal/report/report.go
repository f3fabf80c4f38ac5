// Package report renders regstat results as text tables.
package report

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sartorproj/regstat/stats"
)

// Described is a named descriptive summary.
type Described struct {
	Name    string
	Summary stats.Summary
}

// Fitted is a regression of Y against X.
type Fitted struct {
	X, Y string
	Fit  *stats.Regression
}

var counts = message.NewPrinter(language.English)

// Heading writes a bold section title.
func Heading(w io.Writer, format string, a ...any) {
	bold := color.New(color.Bold).SprintfFunc()
	output(w, "%s\n", bold(format, a...))
}

// Summaries writes one row per sequence: count, mean, standard deviation,
// minimum and maximum.
func Summaries(w io.Writer, rows []Described) {
	tbl := newTable(w, []string{"Series", "N", "Mean", "StdDev", "Min", "Max"})
	for _, r := range rows {
		s := r.Summary
		tbl.Append([]string{
			r.Name,
			counts.Sprintf("%d", s.N),
			number(s.Mean),
			number(s.StdDev),
			number(s.Min),
			number(s.Max),
		})
	}
	tbl.Render()
}

// Fits writes one row per regression: the fitted line and its correlation.
func Fits(w io.Writer, rows []Fitted) {
	tbl := newTable(w, []string{"Y", "X", "N", "Intercept", "Slope", "R", "R²"})
	for _, r := range rows {
		tbl.Append([]string{
			r.Y,
			r.X,
			counts.Sprintf("%d", r.Fit.N),
			number(r.Fit.Intercept),
			number(r.Fit.Slope),
			number(r.Fit.R),
			number(r.Fit.RSquared()),
		})
	}
	tbl.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetBorder(true)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	return tbl
}

// number formats v to four decimal places, or "-" when undefined.
func number(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
