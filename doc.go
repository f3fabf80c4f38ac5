// Package regstat provides descriptive and bivariate statistics over numeric
// columns loaded from CSV files.
//
// The module is meant for ad-hoc analysis of paired datasets (two measured
// variables) from Go code or from the regstat command.
//
// # Quick Start
//
// Load two columns and fit a line:
//
//	gpa, _ := series.LoadColumn("grades.csv", series.ColumnOptions{HasHeader: true, Column: 1})
//	sat, _ := series.LoadColumn("grades.csv", series.ColumnOptions{HasHeader: true, Column: 2})
//
//	fit, err := stats.Fit(sat.Values, gpa.Values)
//	if err != nil {
//	    // stats.ErrDomain: mismatched lengths or a constant X
//	}
//	fmt.Printf("y = %.4f + %.4f x (r=%.4f)\n", fit.Intercept, fit.Slope, fit.R)
//
// # Packages
//
//   - series: numeric sequences and the CSV column loader
//   - stats: mean, standard deviation, regression and correlation
//
// # Conventions
//
// Standard deviation and variance are population statistics (divisor N).
// The mean of an empty sequence is 0. Regression and correlation report
// stats.ErrDomain instead of returning Inf or NaN when the formula is
// undefined.
package regstat
