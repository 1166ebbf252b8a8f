package profiling

import (
	"driftwatch/domain/core"
	"driftwatch/drift"
	"driftwatch/stats/outliers"
)

// SummaryStats holds central tendency and spread for a numeric column
type SummaryStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// DistributionStats describes the shape of a numeric column
type DistributionStats struct {
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
	IsNormal   bool    `json:"is_normal"`
	NormalityP float64 `json:"normality_p"`
}

// CategoricalStats describes a categorical column's frequency landscape
type CategoricalStats struct {
	Cardinality   int     `json:"cardinality"`
	Mode          string  `json:"mode"`
	ModeFrequency int     `json:"mode_frequency"`
	Entropy       float64 `json:"entropy"`
}

// ColumnProfile is the full statistical profile for one column
type ColumnProfile struct {
	Column       core.ColumnKey      `json:"column"`
	Kind         drift.ColumnKind    `json:"kind"`
	Count        int                 `json:"count"`
	MissingCount int                 `json:"missing_count"`
	Summary      *SummaryStats       `json:"summary,omitempty"`      // numeric columns
	Distribution *DistributionStats  `json:"distribution,omitempty"` // numeric columns
	Outliers     *outliers.IQRReport `json:"outliers,omitempty"`     // numeric columns
	Categorical  *CategoricalStats   `json:"categorical,omitempty"`  // categorical columns
}

// DatasetProfile aggregates per-column profiles plus cross-column structure
type DatasetProfile struct {
	RowCount     int                                               `json:"row_count"`
	Columns      map[core.ColumnKey]ColumnProfile                  `json:"columns"`
	Correlations map[core.ColumnKey]map[core.ColumnKey]float64     `json:"correlations,omitempty"`
	ProfiledAt   core.Timestamp                                    `json:"profiled_at"`
}
