// Package stats provides descriptive and bivariate statistics over numeric sequences.
package stats

import (
	"math"

	"github.com/sartorproj/regstat/series"
)

// Sum returns the sum of xs.
func Sum(xs []float64) float64 {
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean of xs. The mean of an empty
// sequence is 0.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return Sum(xs) / float64(len(xs))
}

// Variance calculates the population variance of xs (divisor N).
// Sequences with fewer than two values have variance 0.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	sumSq := 0.0
	for _, v := range xs {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(xs))
}

// StdDev calculates the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// SumOfSquares returns Σ xᵢ².
func SumOfSquares(xs []float64) float64 {
	sum := 0.0
	for _, v := range xs {
		sum += v * v
	}
	return sum
}

// Summary holds descriptive statistics for one sequence.
type Summary struct {
	N        int
	Sum      float64
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Describe computes a Summary of xs. Min and Max are NaN for an empty sequence.
func Describe(xs []float64) Summary {
	seq := series.Series{Values: xs}
	s := Summary{
		N:        len(xs),
		Sum:      Sum(xs),
		Mean:     Mean(xs),
		Variance: Variance(xs),
		Min:      seq.Min(),
		Max:      seq.Max(),
	}
	s.StdDev = math.Sqrt(s.Variance)
	return s
}

// constant reports whether every value of xs is equal.
func constant(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}
