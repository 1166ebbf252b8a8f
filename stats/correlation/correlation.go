// Package correlation provides pairwise linear (Pearson) and rank-based
// (Spearman) correlation, plus a correlation matrix over dataset columns.
package correlation

import (
	"errors"
	"sort"

	"driftwatch/domain/core"
	"driftwatch/domain/dataset"
	"driftwatch/stats/descriptive"
)

var (
	// ErrLengthMismatch marks correlation of sequences with different lengths
	ErrLengthMismatch = errors.New("sequences must have equal length")
	// ErrInsufficientData marks correlation of sequences shorter than 2
	ErrInsufficientData = errors.New("correlation requires at least 2 observations")
	// ErrZeroVariance marks correlation against a constant sequence, which is
	// undefined rather than zero
	ErrZeroVariance = errors.New("correlation undefined for zero-variance sequence")
)

// Pearson computes the linear correlation coefficient between x and y as
// covariance / (n * stdev(x) * stdev(y)) with population standard deviations.
// Degenerate inputs return a sentinel error, never a silent 0.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrInsufficientData
	}

	meanX, err := descriptive.Mean(x)
	if err != nil {
		return 0, err
	}
	meanY, err := descriptive.Mean(y)
	if err != nil {
		return 0, err
	}

	stdevX, err := descriptive.Stdev(x)
	if err != nil {
		return 0, err
	}
	stdevY, err := descriptive.Stdev(y)
	if err != nil {
		return 0, err
	}
	if stdevX == 0 || stdevY == 0 {
		return 0, ErrZeroVariance
	}

	covariance := 0.0
	for i := range x {
		covariance += (x[i] - meanX) * (y[i] - meanY)
	}
	covariance /= float64(len(x))

	r := covariance / (stdevX * stdevY)

	// Clamp to [-1, 1] (floating point can overshoot slightly)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, nil
}

// Spearman computes the rank correlation coefficient: both sequences are
// converted to 1-based ranks (ties receive their average rank), then Pearson
// is applied to the rank sequences. Degenerate-input policy matches Pearson.
func Spearman(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrInsufficientData
	}
	return Pearson(Ranks(x), Ranks(y))
}

// Ranks converts values to 1-based ranks, assigning tied values the average
// of the ranks they span (two tied smallest values both rank 1.5).
func Ranks(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return []float64{}
	}

	type pair struct {
		value float64
		index int
	}

	pairs := make([]pair, n)
	for i, val := range data {
		pairs[i] = pair{value: val, index: i}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	ranks := make([]float64, n)

	i := 0
	for i < n {
		j := i + 1

		// Find the end of the tie group
		for j < n && pairs[j].value == pairs[i].value {
			j++
		}

		// Average rank for this group
		groupSize := j - i
		avgRank := float64(i+1) + float64(groupSize-1)/2.0

		for k := i; k < j; k++ {
			ranks[pairs[k].index] = avgRank
		}

		i = j
	}

	return ranks
}

// Matrix computes the pairwise Pearson correlation over the given columns,
// extracting each column's numeric non-null values. Diagonal entries are
// fixed at 1.0.
//
// When Pearson is undefined for a pair (zero variance, length mismatch after
// null filtering, too few values) the entry is 0.0. This conflates "no
// correlation" with "correlation undefined"; callers that need to tell the
// two apart should call Pearson directly.
func Matrix(ds dataset.Dataset, columns []core.ColumnKey) map[core.ColumnKey]map[core.ColumnKey]float64 {
	extracted := make(map[core.ColumnKey][]float64, len(columns))
	for _, col := range columns {
		extracted[col] = ds.LooseNumericColumn(col)
	}

	matrix := make(map[core.ColumnKey]map[core.ColumnKey]float64, len(columns))
	for _, c1 := range columns {
		row := make(map[core.ColumnKey]float64, len(columns))
		for _, c2 := range columns {
			if c1 == c2 {
				row[c2] = 1.0
				continue
			}
			r, err := Pearson(extracted[c1], extracted[c2])
			if err != nil {
				row[c2] = 0.0
				continue
			}
			row[c2] = r
		}
		matrix[c1] = row
	}
	return matrix
}
