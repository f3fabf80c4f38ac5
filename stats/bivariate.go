package stats

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDomain reports inputs for which a statistic is undefined: paired
// sequences of different lengths, empty input, NaN or infinite values, or a
// sequence with zero variance where the formula divides by it.
var ErrDomain = errors.New("statistic undefined for input")

// sums holds the spread terms shared by the regression and correlation
// formulas. sxx is N·Σ(x−x̄)², which equals N·Σx² − (Σx)² but is computed
// from centred values so offset data does not cancel to zero.
type sums struct {
	n             float64
	sxx, syy, sxy float64
	xy            float64
}

func pairedSums(xs, ys []float64) (sums, error) {
	if len(xs) != len(ys) {
		return sums{}, errors.Wrapf(ErrDomain, "length mismatch (%d vs %d)", len(xs), len(ys))
	}
	s := sums{n: float64(len(xs))}
	if len(xs) == 0 {
		return s, nil
	}

	var sx, sy float64
	for i := range xs {
		sx += xs[i]
		sy += ys[i]
		s.xy += xs[i] * ys[i]
	}
	if !finite(sx, sy, s.xy) {
		return sums{}, errors.Wrap(ErrDomain, "non-finite values")
	}

	mx, my := sx/s.n, sy/s.n
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		s.sxx += dx * dx
		s.syy += dy * dy
		s.sxy += dx * dy
	}
	s.sxx *= s.n
	s.syy *= s.n
	s.sxy *= s.n
	if !finite(s.sxx, s.syy, s.sxy) {
		return sums{}, errors.Wrap(ErrDomain, "non-finite values")
	}
	return s, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// checkSpread returns ErrDomain unless xs is non-empty, not constant and
// has a positive spread term.
func checkSpread(name string, xs []float64, spread float64) error {
	if len(xs) == 0 {
		return errors.Wrapf(ErrDomain, "%s is empty", name)
	}
	if constant(xs) || !(spread > 0) {
		return errors.Wrapf(ErrDomain, "%s has zero variance", name)
	}
	return nil
}

// SumOfProducts returns Σ xᵢ·yᵢ.
func SumOfProducts(xs, ys []float64) (float64, error) {
	s, err := pairedSums(xs, ys)
	if err != nil {
		return 0, err
	}
	return s.xy, nil
}

// RegressionSlope returns the least-squares slope of ys against xs:
//
//	B = (N·Σxy − Σx·Σy) / (N·Σx² − (Σx)²)
func RegressionSlope(xs, ys []float64) (float64, error) {
	s, err := pairedSums(xs, ys)
	if err != nil {
		return 0, err
	}
	if err := checkSpread("x", xs, s.sxx); err != nil {
		return 0, err
	}
	return s.sxy / s.sxx, nil
}

// RegressionIntercept returns A = mean(ys) − B·mean(xs), where B is the
// slope returned by RegressionSlope.
func RegressionIntercept(xs, ys []float64) (float64, error) {
	b, err := RegressionSlope(xs, ys)
	if err != nil {
		return 0, err
	}
	return Mean(ys) - b*Mean(xs), nil
}

// Correlation returns the Pearson correlation coefficient of xs and ys:
//
//	R = (N·Σxy − Σx·Σy) / sqrt((N·Σx² − (Σx)²)·(N·Σy² − (Σy)²))
//
// Either sequence having zero variance is an ErrDomain.
func Correlation(xs, ys []float64) (float64, error) {
	s, err := pairedSums(xs, ys)
	if err != nil {
		return 0, err
	}
	if err := checkSpread("x", xs, s.sxx); err != nil {
		return 0, err
	}
	if err := checkSpread("y", ys, s.syy); err != nil {
		return 0, err
	}
	return clamp(s.sxy / (math.Sqrt(s.sxx) * math.Sqrt(s.syy))), nil
}

// clamp keeps r inside [-1, 1] against rounding at the extremes.
func clamp(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}

// Regression holds the fitted line y = Intercept + Slope·x.
type Regression struct {
	Intercept float64
	Slope     float64
	R         float64 // Pearson correlation, 0 when Y is constant
	N         int
}

// Fit fits ys against xs by ordinary least squares. It fails with ErrDomain
// under the same conditions as RegressionSlope. A constant Y is a valid
// (horizontal) fit and reports R = 0.
func Fit(xs, ys []float64) (*Regression, error) {
	s, err := pairedSums(xs, ys)
	if err != nil {
		return nil, err
	}
	if err := checkSpread("x", xs, s.sxx); err != nil {
		return nil, err
	}

	slope := s.sxy / s.sxx
	r := 0.0
	if checkSpread("y", ys, s.syy) == nil {
		r = clamp(s.sxy / (math.Sqrt(s.sxx) * math.Sqrt(s.syy)))
	}

	return &Regression{
		Intercept: Mean(ys) - slope*Mean(xs),
		Slope:     slope,
		R:         r,
		N:         len(xs),
	}, nil
}

// Predict evaluates the fitted line at x.
func (r *Regression) Predict(x float64) float64 {
	return r.Intercept + r.Slope*x
}

// RSquared returns the coefficient of determination.
func (r *Regression) RSquared() float64 {
	return r.R * r.R
}
