package dataset

import (
	"driftwatch/domain/core"
)

// Record is a single row of tabular data keyed by column name.
// A nil value means the cell is missing.
type Record map[string]interface{}

// Dataset is an ordered collection of records. It is treated as read-only by
// every engine in this module; statistics are computed fresh on each call.
type Dataset []Record

// RowCount returns the number of records
func (ds Dataset) RowCount() int {
	return len(ds)
}

// Columns returns the sorted union of column keys observed across all records
func (ds Dataset) Columns() []core.ColumnKey {
	seen := make(map[core.ColumnKey]bool)
	for _, rec := range ds {
		for k := range rec {
			seen[core.ColumnKey(k)] = true
		}
	}

	keys := make([]core.ColumnKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	return core.SortColumnKeys(keys)
}

// HasColumn reports whether any record carries the column
func (ds Dataset) HasColumn(col core.ColumnKey) bool {
	for _, rec := range ds {
		if _, ok := rec[string(col)]; ok {
			return true
		}
	}
	return false
}
