package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// analyzeDistribution computes shape markers for a numeric sample
func analyzeDistribution(data []float64) *DistributionStats {
	if len(data) < 3 {
		return nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil || stdDev == 0 {
		return nil
	}

	skewness := calculateSkewness(data, mean, stdDev)
	kurtosis := calculateKurtosis(data, mean, stdDev)
	isNormal, pValue := testNormality(skewness, kurtosis)

	return &DistributionStats{
		Skewness:   skewness,
		Kurtosis:   kurtosis,
		IsNormal:   isNormal,
		NormalityP: pValue,
	}
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	// Adjusted Fisher-Pearson coefficient of skewness
	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	skewness *= correction

	return skewness
}

// calculateKurtosis computes sample kurtosis (total, not excess)
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 {
		return 3.0 // Normal kurtosis
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	kurtosis := sumFourthDeviations / n

	// Bias correction for sample excess kurtosis
	excess := kurtosis - 3
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excess = excess*correction + 6/(n+1)
	}

	return excess + 3
}

// testNormality approximates a normality check from skewness and kurtosis.
// The combined statistic is referred to a chi-square distribution; this is a
// rough screen, not a substitute for a proper test on small samples.
func testNormality(skewness, kurtosis float64) (isNormal bool, pValue float64) {
	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	isNormal = pValue > 0.05
	return isNormal, pValue
}
