package drift

import (
	"fmt"

	"driftwatch/domain/core"
	"driftwatch/domain/dataset"
	"driftwatch/stats/descriptive"
)

// classificationSampleSize bounds how many leading non-null values decide a
// column's kind
const classificationSampleSize = 10

// CreateBaseline builds an immutable snapshot of the reference dataset.
//
// Every column observed across all rows is classified once: if the first
// (up to) 10 non-null values are all numeric the column is numeric, otherwise
// categorical. The classification is frozen; later Detect calls never
// re-infer it. A numeric-classified column containing a non-numeric value
// elsewhere in the reference data is a structural mismatch and fails the
// build with an error naming the column.
func CreateBaseline(ds dataset.Dataset) (*Baseline, error) {
	baseline := &Baseline{
		ID:        core.BaselineID(core.NewID()),
		CreatedAt: core.Now(),
		RowCount:  ds.RowCount(),
		Columns:   make(map[core.ColumnKey]BaselineColumn),
	}

	for _, col := range ds.Columns() {
		values := ds.ColumnValues(col)

		if ClassifyValues(values) == KindNumeric {
			snapshot, err := numericSnapshot(ds, col)
			if err != nil {
				return nil, err
			}
			baseline.Columns[col] = BaselineColumn{Kind: KindNumeric, Numeric: snapshot}
			continue
		}

		baseline.Columns[col] = BaselineColumn{
			Kind:        KindCategorical,
			Categorical: categoricalSnapshot(values),
		}
	}

	baseline.Fingerprint = fingerprint(baseline)
	return baseline, nil
}

// ClassifyValues decides a column's kind from its leading non-null values.
// A column with no non-null values at all is categorical: there is no
// evidence it holds numbers, and an empty frequency table still produces a
// meaningful PSI once data appears.
func ClassifyValues(values []interface{}) ColumnKind {
	if len(values) == 0 {
		return KindCategorical
	}

	sample := values
	if len(sample) > classificationSampleSize {
		sample = sample[:classificationSampleSize]
	}

	for _, v := range sample {
		if _, ok := dataset.NumericValue(v); !ok {
			return KindCategorical
		}
	}
	return KindNumeric
}

func numericSnapshot(ds dataset.Dataset, col core.ColumnKey) (*NumericBaseline, error) {
	values, err := ds.NumericColumn(col)
	if err != nil {
		return nil, core.NewColumnError(col, err)
	}

	mean, err := descriptive.Mean(values)
	if err != nil {
		return nil, core.NewColumnError(col, err)
	}
	stdev, err := descriptive.Stdev(values)
	if err != nil {
		return nil, core.NewColumnError(col, err)
	}

	return &NumericBaseline{Values: values, Mean: mean, Stdev: stdev}, nil
}

func categoricalSnapshot(values []interface{}) *CategoricalBaseline {
	frequencies := make(map[string]int, len(values))
	for _, v := range values {
		frequencies[CategoryKey(v)]++
	}
	return &CategoricalBaseline{Frequencies: frequencies, Total: len(values)}
}

// CategoryKey renders a categorical value as a frequency-table key. Strings
// pass through unchanged; everything else uses its default formatting.
func CategoryKey(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// fingerprint derives a stable content hash identifying the snapshot shape
func fingerprint(b *Baseline) core.Hash {
	parts := make(map[string]string, len(b.Columns)+1)
	parts["rows"] = fmt.Sprintf("%d", b.RowCount)
	for col, c := range b.Columns {
		switch c.Kind {
		case KindNumeric:
			parts[col.String()] = fmt.Sprintf("numeric:%d:%.6g:%.6g", len(c.Numeric.Values), c.Numeric.Mean, c.Numeric.Stdev)
		case KindCategorical:
			parts[col.String()] = fmt.Sprintf("categorical:%d:%d", len(c.Categorical.Frequencies), c.Categorical.Total)
		}
	}
	return core.Fingerprint(parts)
}
