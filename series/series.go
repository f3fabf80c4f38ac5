// Package series provides the numeric sequence type and its CSV loader.
package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Series is an ordered sequence of values, kept in file order.
type Series struct {
	Values []float64
	Name   string
}

// New creates a new series from values. The slice is copied.
func New(values []float64) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return &Series{Values: v}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Min returns the minimum value in the series, or NaN if it is empty.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series, or NaN if it is empty.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}
