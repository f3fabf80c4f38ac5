// Package series provides the numeric sequence type used throughout regstat,
// along with a loader for single CSV columns.
//
// # Creating a Series
//
// Create a series from a slice:
//
//	s := series.New([]float64{2.4, 2.52, 2.54})
//
// # Loading from CSV
//
// Columns are addressed by 0-based index. Lines are split on every comma;
// quoting is not supported and fields are not trimmed.
//
//	opts := series.ColumnOptions{HasHeader: true, Column: 2}
//	s, err := series.LoadColumn("grades.csv", opts)
//
// Every malformed line is fatal. Use errors.Is to tell the failures apart:
//
//	switch {
//	case errors.Is(err, series.ErrIO):     // file could not be opened or read
//	case errors.Is(err, series.ErrFormat): // too few fields on a line
//	case errors.Is(err, series.ErrParse):  // selected field is not a number
//	}
//
// # Writing
//
// WriteColumn and SaveColumn emit a one-column file that LoadColumn reads
// back exactly.
package series
