package dataset

import (
	"driftwatch/domain/core"
)

// NumericValue reports whether v is a Go numeric value and converts it to
// float64. Strings are never coerced, even when they look numeric: a string
// where a number is expected is a structural mismatch, not data.
func NumericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// ColumnValues extracts the non-null values of a column in row order
func (ds Dataset) ColumnValues(col core.ColumnKey) []interface{} {
	values := make([]interface{}, 0, len(ds))
	for _, rec := range ds {
		if v, ok := rec[string(col)]; ok && v != nil {
			values = append(values, v)
		}
	}
	return values
}

// NumericColumn extracts the non-null values of a column as float64s.
// A non-null value that is not numeric surfaces as a type mismatch error;
// it is never silently coerced or skipped.
func (ds Dataset) NumericColumn(col core.ColumnKey) ([]float64, error) {
	values := make([]float64, 0, len(ds))
	for _, rec := range ds {
		v, ok := rec[string(col)]
		if !ok || v == nil {
			continue
		}
		num, ok := NumericValue(v)
		if !ok {
			return nil, core.NewTypeMismatchError(col, v)
		}
		values = append(values, num)
	}
	return values, nil
}

// LooseNumericColumn extracts the numeric non-null values of a column,
// skipping values of any other type. Used where classification has not yet
// decided that the column must be numeric (e.g. correlation matrices).
func (ds Dataset) LooseNumericColumn(col core.ColumnKey) []float64 {
	values := make([]float64, 0, len(ds))
	for _, rec := range ds {
		v, ok := rec[string(col)]
		if !ok || v == nil {
			continue
		}
		if num, ok := NumericValue(v); ok {
			values = append(values, num)
		}
	}
	return values
}
