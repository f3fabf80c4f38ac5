// Package stats provides descriptive and bivariate statistics over numeric
// sequences.
//
// Every function is a pure, single pass over its inputs; none of them
// modifies the slices it is given.
//
// # Descriptive Statistics
//
//	m := stats.Mean(xs)     // 0 for an empty sequence
//	sd := stats.StdDev(xs)  // population standard deviation (divisor N)
//	ss := stats.SumOfSquares(xs)
//	summary := stats.Describe(xs)
//
// # Regression and Correlation
//
// Paired sequences must have the same length. Regression needs a
// non-constant X; correlation needs both sequences to be non-constant.
// Otherwise the functions return an error wrapping ErrDomain:
//
//	slope, err := stats.RegressionSlope(xs, ys)
//	intercept, err := stats.RegressionIntercept(xs, ys)
//	r, err := stats.Correlation(xs, ys)
//
//	// All at once
//	fit, err := stats.Fit(xs, ys)
//	y := fit.Predict(1800)
package stats
