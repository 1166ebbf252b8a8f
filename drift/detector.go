package drift

import (
	"fmt"

	"driftwatch/domain/core"
	"driftwatch/domain/dataset"
)

// Detector compares datasets against a baseline. It holds only configuration;
// one detector may serve any number of concurrent Detect calls.
type Detector struct {
	opts Options
}

// NewDetector creates a detector, filling unset options with defaults
func NewDetector(opts Options) *Detector {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Method == "" {
		opts.Method = MethodAuto
	}
	return &Detector{opts: opts}
}

// Detect compares the dataset against the baseline and produces a fresh,
// independent Result.
//
// Each baseline column is scored with the comparison its frozen kind
// dictates: numeric columns by the KS statistic between the stored reference
// values and the new sample, categorical columns by PSI between the two
// frequency distributions. A column counts as drifted when its score exceeds
// the threshold.
//
// Structural mismatches on a single column (column absent from the dataset,
// non-numeric value where the baseline is numeric) do not abort the run: the
// column is recorded in ColumnErrors, receives no score, and the remaining
// columns still complete.
func (d *Detector) Detect(ds dataset.Dataset, baseline *Baseline) (*Result, error) {
	if baseline == nil {
		return nil, fmt.Errorf("detect: %w", core.ErrBaselineNotFound)
	}

	result := &Result{
		Scores:       make(map[core.ColumnKey]float64, len(baseline.Columns)),
		Method:       d.opts.Method,
		Threshold:    d.opts.Threshold,
		Details:      make(map[core.ColumnKey]ColumnDetail, len(baseline.Columns)),
		ColumnErrors: make(map[core.ColumnKey]string),
		DetectedAt:   core.Now(),
	}

	for _, col := range baseline.ColumnKeys() {
		if !ds.HasColumn(col) {
			result.ColumnErrors[col] = core.NewColumnError(col, core.ErrColumnNotFound).Error()
			continue
		}

		column := baseline.Columns[col]
		switch column.Kind {
		case KindNumeric:
			d.scoreNumeric(ds, col, column.Numeric, result)
		case KindCategorical:
			d.scoreCategorical(ds, col, column.Categorical, result)
		default:
			result.ColumnErrors[col] = fmt.Sprintf("column %s: unknown baseline kind %q", col, column.Kind)
		}
	}

	for col, score := range result.Scores {
		if score > result.Threshold {
			result.ColumnsDrifted = append(result.ColumnsDrifted, col)
		}
	}
	result.ColumnsDrifted = core.SortColumnKeys(result.ColumnsDrifted)
	result.Drifted = len(result.ColumnsDrifted) > 0

	return result, nil
}

func (d *Detector) scoreNumeric(ds dataset.Dataset, col core.ColumnKey, nb *NumericBaseline, result *Result) {
	current, err := ds.NumericColumn(col)
	if err != nil {
		result.ColumnErrors[col] = err.Error()
		return
	}

	statistic, pValue := KSTest(nb.Values, current)
	result.Scores[col] = statistic
	result.Details[col] = ColumnDetail{
		Kind:         KindNumeric,
		Score:        statistic,
		PValue:       pValue,
		BaselineSize: len(nb.Values),
		CurrentSize:  len(current),
	}
}

func (d *Detector) scoreCategorical(ds dataset.Dataset, col core.ColumnKey, cb *CategoricalBaseline, result *Result) {
	values := ds.ColumnValues(col)

	frequencies := make(map[string]int, len(values))
	for _, v := range values {
		frequencies[CategoryKey(v)]++
	}

	score := PSI(
		Proportions(cb.Frequencies, cb.Total),
		Proportions(frequencies, len(values)),
	)

	result.Scores[col] = score
	result.Details[col] = ColumnDetail{
		Kind:         KindCategorical,
		Score:        score,
		BaselineSize: cb.Total,
		CurrentSize:  len(values),
	}
}

// Detect is a convenience wrapper for one-shot detection with explicit options
func Detect(ds dataset.Dataset, baseline *Baseline, opts Options) (*Result, error) {
	return NewDetector(opts).Detect(ds, baseline)
}
