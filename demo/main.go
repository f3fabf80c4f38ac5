// Package main demonstrates regstat on the GPA/SAT dataset: the columns are
// written to CSV, loaded back, described and regressed.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sartorproj/regstat/series"
	"github.com/sartorproj/regstat/stats"
)

// Dataset defines one column of the demo data
type Dataset struct {
	Name        string    // Display name
	Description string    // Brief description
	File        string    // CSV filename
	Header      string    // Header line written above the values
	Values      []float64 // Column contents
}

// SeriesResult holds descriptive statistics for JSON export
type SeriesResult struct {
	Name   string    `json:"name"`
	N      int       `json:"n"`
	Mean   float64   `json:"mean"`
	StdDev float64   `json:"stddev"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Values []float64 `json:"values"`
}

// RegressionResult holds a fitted line for JSON export
type RegressionResult struct {
	X         string    `json:"x"`
	Y         string    `json:"y"`
	Intercept float64   `json:"intercept"`
	Slope     float64   `json:"slope"`
	R         float64   `json:"r"`
	RSquared  float64   `json:"r_squared"`
	RMSE      float64   `json:"rmse"`
	MAE       float64   `json:"mae"`
	Fitted    []float64 `json:"fitted"`
}

// OutputData holds all results for export
type OutputData struct {
	Series      []SeriesResult     `json:"series"`
	Regressions []RegressionResult `json:"regressions"`
}

var (
	gpa = Dataset{
		Name:        "GPA",
		Description: "Grade point average",
		File:        "gpa.csv",
		Header:      "gpa",
		Values:      []float64{2.4, 2.52, 2.54, 2.74, 2.83, 3, 3, 3.01, 3.01, 3.02},
	}
	sat = Dataset{
		Name:        "SAT",
		Description: "SAT score",
		File:        "sat.csv",
		Header:      "sat",
		Values:      []float64{1714, 1664, 1760, 1685, 1693, 1764, 1764, 1792, 1850, 1735},
	}
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("regstat demonstration - GPA vs SAT")
	fmt.Println(strings.Repeat("=", 80))

	dataDir, err := os.MkdirTemp("", "regstat-demo")
	if err != nil {
		fail("creating data directory: %v", err)
	}
	fmt.Printf("\nData directory: %s\n", dataDir)

	output, err := analyze(dataDir)
	os.RemoveAll(dataDir)
	if err != nil {
		fail("%v", err)
	}

	// Export results
	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	if err := export(output, "regression_results.json"); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Exported %d series and %d regressions to regression_results.json\n",
		len(output.Series), len(output.Regressions))
	fmt.Println(strings.Repeat("=", 80))
}

// analyze loads both columns from dataDir, describes them and fits each
// against the other
func analyze(dataDir string) (*OutputData, error) {
	output := &OutputData{}
	loaded := make(map[string]*series.Series)

	for i, ds := range []Dataset{gpa, sat} {
		fmt.Printf("\n[%d/2] %s (%s)\n", i+1, ds.Name, ds.Description)

		s, err := roundTrip(dataDir, ds)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ds.Name, err)
		}
		loaded[ds.Name] = s

		d := stats.Describe(s.Values)
		fmt.Printf("   Loaded %d observations (%.2f to %.2f)\n", d.N, d.Min, d.Max)
		fmt.Printf("   Mean=%.4f  StdDev=%.4f\n", d.Mean, d.StdDev)

		output.Series = append(output.Series, SeriesResult{
			Name: ds.Name, N: d.N, Mean: d.Mean, StdDev: d.StdDev,
			Min: d.Min, Max: d.Max, Values: s.Values,
		})
	}

	fmt.Printf("\n%s\nREGRESSION\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	// GPA as a function of SAT, then the reverse
	for _, p := range []struct{ x, y string }{{"SAT", "GPA"}, {"GPA", "SAT"}} {
		xs, ys := loaded[p.x].Values, loaded[p.y].Values
		fit, err := stats.Fit(xs, ys)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", p.y, p.x, err)
		}

		fitted := make([]float64, len(xs))
		for i, x := range xs {
			fitted[i] = fit.Predict(x)
		}
		rmse, mae := residuals(ys, fitted)

		fmt.Printf("   %s = %.4f + %.4f * %s   (r=%.4f, RMSE=%.4f)\n",
			p.y, fit.Intercept, fit.Slope, p.x, fit.R, rmse)

		output.Regressions = append(output.Regressions, RegressionResult{
			X: p.x, Y: p.y, Intercept: fit.Intercept, Slope: fit.Slope,
			R: fit.R, RSquared: fit.RSquared(), RMSE: rmse, MAE: mae, Fitted: fitted,
		})
	}

	return output, nil
}

// export writes output as indented JSON. NaN statistics cannot be encoded
// and fail the export.
func export(output *OutputData, path string) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// roundTrip writes the dataset as a CSV column and loads it back
func roundTrip(dataDir string, ds Dataset) (*series.Series, error) {
	path := filepath.Join(dataDir, ds.File)
	if err := series.SaveColumn(path, series.New(ds.Values), ds.Header); err != nil {
		return nil, err
	}
	return series.LoadColumn(path, series.ColumnOptions{HasHeader: true})
}

// residuals returns the RMSE and MAE of predicted against actual
func residuals(actual, predicted []float64) (rmse, mae float64) {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		d := actual[i] - predicted[i]
		rmse += d * d
		mae += math.Abs(d)
	}
	return math.Sqrt(rmse / float64(n)), mae / float64(n)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
