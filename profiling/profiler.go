// Package profiling builds statistical profiles of tabular datasets: per-
// column summary and shape statistics, outlier reports, and a cross-column
// correlation matrix. Profiles feed reporting and baseline review; the drift
// detector does not depend on them.
package profiling

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"driftwatch/domain/core"
	"driftwatch/domain/dataset"
	"driftwatch/drift"
	"driftwatch/stats/correlation"
	"driftwatch/stats/descriptive"
	"driftwatch/stats/outliers"
)

// Profiler computes dataset profiles. It is stateless and safe for
// concurrent use.
type Profiler struct {
	// workers bounds concurrent column profiling; 0 means one goroutine
	// per column
	workers int
}

// NewProfiler creates a profiler with unbounded per-column concurrency
func NewProfiler() *Profiler {
	return &Profiler{}
}

// NewProfilerWithWorkers bounds the number of columns profiled at once
func NewProfilerWithWorkers(workers int) *Profiler {
	return &Profiler{workers: workers}
}

// ProfileDataset profiles every column of the dataset. Columns are
// independent, so they are processed concurrently; the input is read-only
// throughout.
func (p *Profiler) ProfileDataset(ctx context.Context, ds dataset.Dataset) (*DatasetProfile, error) {
	columns := ds.Columns()

	profile := &DatasetProfile{
		RowCount:   ds.RowCount(),
		Columns:    make(map[core.ColumnKey]ColumnProfile, len(columns)),
		ProfiledAt: core.Now(),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if p.workers > 0 {
		g.SetLimit(p.workers)
	}

	for _, col := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cp := p.profileColumn(ds, col)
			mu.Lock()
			profile.Columns[col] = cp
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile.Correlations = p.numericCorrelations(ds, profile.Columns, columns)
	return profile, nil
}

// profileColumn builds the profile for a single column
func (p *Profiler) profileColumn(ds dataset.Dataset, col core.ColumnKey) ColumnProfile {
	values := ds.ColumnValues(col)

	cp := ColumnProfile{
		Column:       col,
		Kind:         drift.ClassifyValues(values),
		Count:        len(values),
		MissingCount: ds.RowCount() - len(values),
	}

	switch cp.Kind {
	case drift.KindNumeric:
		numeric := ds.LooseNumericColumn(col)
		cp.Summary = summarize(numeric)
		cp.Distribution = analyzeDistribution(numeric)
		report := outliers.DetectIQR(numeric)
		cp.Outliers = &report
	case drift.KindCategorical:
		cp.Categorical = categorize(values)
	}

	return cp
}

func summarize(data []float64) *SummaryStats {
	mean, err := descriptive.Mean(data)
	if err != nil {
		return nil
	}

	stdDev, _ := descriptive.Stdev(data)
	min, _ := descriptive.Min(data)
	max, _ := descriptive.Max(data)
	median, _ := descriptive.Median(data)
	q25, _ := descriptive.Quantile(data, 0.25)
	q75, _ := descriptive.Quantile(data, 0.75)

	return &SummaryStats{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}
}

func categorize(values []interface{}) *CategoricalStats {
	if len(values) == 0 {
		return &CategoricalStats{}
	}

	frequency := make(map[string]int, len(values))
	for _, v := range values {
		frequency[drift.CategoryKey(v)]++
	}

	mode := ""
	modeFreq := 0
	entropy := 0.0
	total := float64(len(values))

	for value, count := range frequency {
		if count > modeFreq || (count == modeFreq && value < mode) {
			mode = value
			modeFreq = count
		}
		prob := float64(count) / total
		entropy -= prob * math.Log2(prob)
	}

	return &CategoricalStats{
		Cardinality:   len(frequency),
		Mode:          mode,
		ModeFrequency: modeFreq,
		Entropy:       entropy,
	}
}

// numericCorrelations computes the Pearson matrix over the numeric columns
func (p *Profiler) numericCorrelations(ds dataset.Dataset, profiles map[core.ColumnKey]ColumnProfile, columns []core.ColumnKey) map[core.ColumnKey]map[core.ColumnKey]float64 {
	numeric := make([]core.ColumnKey, 0, len(columns))
	for _, col := range columns {
		if profiles[col].Kind == drift.KindNumeric {
			numeric = append(numeric, col)
		}
	}
	if len(numeric) < 2 {
		return nil
	}
	return correlation.Matrix(ds, numeric)
}
