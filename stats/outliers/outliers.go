// Package outliers flags anomalous values in a numeric sample using IQR
// fences or Z-scores. Reports carry the full audit trail (fences, quartiles,
// z-scores) so downstream consumers can explain why a value was flagged.
package outliers

import (
	"math"

	"driftwatch/stats/descriptive"
)

// DefaultZScoreThreshold is the conventional cutoff for Z-score flagging
const DefaultZScoreThreshold = 3.0

// IQRReport describes an interquartile-range outlier pass
type IQRReport struct {
	Q1         float64   `json:"q1"`
	Q3         float64   `json:"q3"`
	IQR        float64   `json:"iqr"`
	LowerFence float64   `json:"lower_fence"`
	UpperFence float64   `json:"upper_fence"`
	Outliers   []float64 `json:"outliers"`
	Indices    []int     `json:"indices"`
	SampleSize int       `json:"sample_size"`
}

// ZScoreReport describes a Z-score outlier pass
type ZScoreReport struct {
	Mean       float64   `json:"mean"`
	Stdev      float64   `json:"stdev"`
	Threshold  float64   `json:"threshold"`
	Outliers   []float64 `json:"outliers"`
	Indices    []int     `json:"indices"`
	Scores     []float64 `json:"scores"`
	SampleSize int       `json:"sample_size"`
}

// DetectIQR flags values lying strictly outside the Tukey fences
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. An empty sample yields an empty, fence-less
// report rather than an error.
func DetectIQR(xs []float64) IQRReport {
	report := IQRReport{
		Outliers:   []float64{},
		Indices:    []int{},
		SampleSize: len(xs),
	}
	if len(xs) == 0 {
		return report
	}

	q1, err := descriptive.Quantile(xs, 0.25)
	if err != nil {
		return report
	}
	q3, err := descriptive.Quantile(xs, 0.75)
	if err != nil {
		return report
	}

	iqr := q3 - q1
	report.Q1 = q1
	report.Q3 = q3
	report.IQR = iqr
	report.LowerFence = q1 - 1.5*iqr
	report.UpperFence = q3 + 1.5*iqr

	for i, x := range xs {
		if x < report.LowerFence || x > report.UpperFence {
			report.Outliers = append(report.Outliers, x)
			report.Indices = append(report.Indices, i)
		}
	}
	return report
}

// DetectZScore flags values whose absolute z-score |x - mean| / stdev exceeds
// the threshold. A zero standard deviation means a degenerate distribution in
// which nothing is anomalous, so no values are flagged.
func DetectZScore(xs []float64, threshold float64) ZScoreReport {
	if threshold <= 0 {
		threshold = DefaultZScoreThreshold
	}

	report := ZScoreReport{
		Threshold:  threshold,
		Outliers:   []float64{},
		Indices:    []int{},
		Scores:     []float64{},
		SampleSize: len(xs),
	}
	if len(xs) == 0 {
		return report
	}

	mean, err := descriptive.Mean(xs)
	if err != nil {
		return report
	}
	stdev, err := descriptive.Stdev(xs)
	if err != nil {
		return report
	}

	report.Mean = mean
	report.Stdev = stdev

	report.Scores = make([]float64, len(xs))
	if stdev == 0 {
		return report
	}

	for i, x := range xs {
		z := math.Abs(x-mean) / stdev
		report.Scores[i] = z
		if z > threshold {
			report.Outliers = append(report.Outliers, x)
			report.Indices = append(report.Indices, i)
		}
	}
	return report
}
