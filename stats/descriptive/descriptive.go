// Package descriptive provides central-tendency and variability statistics
// over numeric samples. Samples are never mutated; degenerate inputs resolve
// to sentinel errors rather than panics, so absence of a statistic stays
// distinguishable from a legitimate zero.
package descriptive

import (
	"errors"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

var (
	// ErrEmptySample marks statistics that are undefined on empty input
	ErrEmptySample = errors.New("statistic undefined for empty sample")
	// ErrInvalidQuantile marks quantile requests outside [0, 1]
	ErrInvalidQuantile = errors.New("quantile must be in [0, 1]")
)

// Mean returns the arithmetic mean of xs
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stats.Mean(xs)
}

// Median returns the middle order statistic, averaging the two middle
// elements for even-length samples
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stats.Median(xs)
}

// Min returns the smallest value in xs
func Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stats.Min(xs)
}

// Max returns the largest value in xs
func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stats.Max(xs)
}

// Variance returns the population variance (mean squared deviation, divided
// by n rather than n-1). A single-element sample has variance 0.
func Variance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stats.PopulationVariance(xs)
}

// Stdev returns the population standard deviation
func Stdev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Quantile returns the p-quantile of xs using linear interpolation between
// the order statistics bracketing the fractional rank p*(n-1). When the rank
// is integral the order statistic itself is returned.
//
// montanaflynn's Percentile uses nearest-rank selection, which disagrees with
// this contract, so the interpolation is done here.
func Quantile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	if p < 0 || p > 1 {
		return 0, ErrInvalidQuantile
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}

	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), nil
}
