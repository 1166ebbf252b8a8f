// Package testkit generates deterministic synthetic datasets for tests.
package testkit

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"driftwatch/domain/dataset"
)

// Generator produces reproducible synthetic samples and datasets
type Generator struct {
	src *rand.PCG
}

// NewGenerator creates a generator seeded for reproducibility
func NewGenerator(seed uint64) *Generator {
	return &Generator{src: rand.NewPCG(seed, seed)}
}

// Normal draws n values from Normal(mean, stdev)
func (g *Generator) Normal(n int, mean, stdev float64) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: stdev, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Uniform draws n values from Uniform(min, max)
func (g *Generator) Uniform(n int, min, max float64) []float64 {
	dist := distuv.Uniform{Min: min, Max: max, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Categories draws n category labels with the given weights. Weights need
// not sum to 1; they are normalized internally.
func (g *Generator) Categories(n int, weights map[string]float64) []string {
	labels := make([]string, 0, len(weights))
	total := 0.0
	for label, w := range weights {
		labels = append(labels, label)
		total += w
	}
	// Stable label order for reproducibility
	sort.Strings(labels)

	rng := rand.New(g.src)
	out := make([]string, n)
	for i := range out {
		u := rng.Float64() * total
		acc := 0.0
		for _, label := range labels {
			acc += weights[label]
			if u <= acc {
				out[i] = label
				break
			}
		}
		if out[i] == "" {
			out[i] = labels[len(labels)-1]
		}
	}
	return out
}

// NumericDataset builds a single-column dataset from a numeric sample
func NumericDataset(col string, values []float64) dataset.Dataset {
	ds := make(dataset.Dataset, len(values))
	for i, v := range values {
		ds[i] = dataset.Record{col: v}
	}
	return ds
}

// CategoricalDataset builds a single-column dataset from category labels
func CategoricalDataset(col string, labels []string) dataset.Dataset {
	ds := make(dataset.Dataset, len(labels))
	for i, v := range labels {
		ds[i] = dataset.Record{col: v}
	}
	return ds
}

// MergeColumns zips same-length single-column datasets into one dataset
func MergeColumns(datasets ...dataset.Dataset) dataset.Dataset {
	if len(datasets) == 0 {
		return nil
	}
	out := make(dataset.Dataset, len(datasets[0]))
	for i := range out {
		rec := dataset.Record{}
		for _, ds := range datasets {
			for k, v := range ds[i] {
				rec[k] = v
			}
		}
		out[i] = rec
	}
	return out
}
