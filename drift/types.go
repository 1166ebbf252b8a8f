// Package drift detects distribution drift between a frozen baseline snapshot
// of a reference dataset and newly observed data. Numeric columns are compared
// with a two-sample Kolmogorov-Smirnov test, categorical columns with the
// Population Stability Index.
package drift

import (
	"driftwatch/domain/core"
)

// Method labels which comparison family a detection run reports under.
// Dispatch per column is always driven by the column's baseline kind
// (numeric -> KS, categorical -> PSI); Method labels the result only.
type Method string

const (
	MethodAuto Method = "auto"
	MethodKS   Method = "ks"
	MethodPSI  Method = "psi"
)

// ColumnKind classifies a baseline column. The kind is decided once at
// baseline construction and frozen for the life of the baseline.
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// NumericBaseline retains the full reference sample alongside its moments.
// The raw values are needed for KS comparison against new samples.
type NumericBaseline struct {
	Values []float64 `json:"values"`
	Mean   float64   `json:"mean"`
	Stdev  float64   `json:"stdev"`
}

// CategoricalBaseline captures a frequency table of the reference sample
type CategoricalBaseline struct {
	Frequencies map[string]int `json:"frequencies"`
	Total       int            `json:"total"`
}

// BaselineColumn is a kind-tagged snapshot of one column. Exactly one of the
// payload pointers is set, matching Kind; Detect dispatches exhaustively on it.
type BaselineColumn struct {
	Kind        ColumnKind           `json:"kind"`
	Numeric     *NumericBaseline     `json:"numeric,omitempty"`
	Categorical *CategoricalBaseline `json:"categorical,omitempty"`
}

// Baseline is an immutable statistical snapshot of a reference dataset.
// It is safe to share across any number of concurrent Detect calls.
type Baseline struct {
	ID          core.BaselineID                   `json:"id"`
	CreatedAt   core.Timestamp                    `json:"created_at"`
	RowCount    int                               `json:"row_count"`
	Columns     map[core.ColumnKey]BaselineColumn `json:"columns"`
	Fingerprint core.Hash                         `json:"fingerprint"`
}

// Column looks up a column snapshot by key
func (b *Baseline) Column(col core.ColumnKey) (BaselineColumn, bool) {
	c, ok := b.Columns[col]
	return c, ok
}

// ColumnKeys returns the baseline's column keys in sorted order
func (b *Baseline) ColumnKeys() []core.ColumnKey {
	keys := make([]core.ColumnKey, 0, len(b.Columns))
	for k := range b.Columns {
		keys = append(keys, k)
	}
	return core.SortColumnKeys(keys)
}

// DefaultThreshold is the drift score above which a column counts as drifted
const DefaultThreshold = 0.05

// Options configures a detection run
type Options struct {
	Threshold float64 `json:"threshold"`
	Method    Method  `json:"method"`
}

// DefaultOptions returns the conventional detection configuration
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Method:    MethodAuto,
	}
}

// ColumnDetail is the per-column audit trail of a detection run
type ColumnDetail struct {
	Kind         ColumnKind `json:"kind"`
	Score        float64    `json:"score"`
	PValue       float64    `json:"p_value,omitempty"` // KS columns only
	BaselineSize int        `json:"baseline_size"`
	CurrentSize  int        `json:"current_size"`
}

// Result is the immutable outcome of one Detect call.
//
// Invariants: Drifted == (len(ColumnsDrifted) > 0), and ColumnsDrifted holds
// exactly the columns whose score exceeds Threshold, in sorted order.
type Result struct {
	Drifted        bool                            `json:"drifted"`
	ColumnsDrifted []core.ColumnKey                `json:"columns_drifted"`
	Scores         map[core.ColumnKey]float64      `json:"drift_scores"`
	Method         Method                          `json:"method"`
	Threshold      float64                         `json:"threshold"`
	Details        map[core.ColumnKey]ColumnDetail `json:"details,omitempty"`
	ColumnErrors   map[core.ColumnKey]string       `json:"column_errors,omitempty"`
	DetectedAt     core.Timestamp                  `json:"detected_at"`
}
