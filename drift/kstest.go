package drift

import (
	"math"
	"sort"
)

// KSTest computes the two-sample Kolmogorov-Smirnov statistic and an
// approximate p-value.
//
// The statistic is the maximum absolute gap between the two empirical CDFs,
// evaluated at every distinct value appearing in either sample. The p-value
// comes from the asymptotic Kolmogorov series with lambda = D * sqrt(n1*n2 /
// (n1+n2)), truncated at ten terms and clamped to [0, 1]. It is an asymptotic
// approximation, not an exact tail probability; it is unreliable for very
// small samples.
//
// An empty sample on either side is degenerate, not an error: the result is
// statistic 0 and p-value 1.
func KSTest(sample1, sample2 []float64) (statistic, pValue float64) {
	if len(sample1) == 0 || len(sample2) == 0 {
		return 0, 1
	}

	s1 := sortedCopy(sample1)
	s2 := sortedCopy(sample2)
	candidates := mergeDistinct(s1, s2)

	n1 := float64(len(s1))
	n2 := float64(len(s2))

	maxD := 0.0
	for _, v := range candidates {
		cdf1 := float64(countAtMost(s1, v)) / n1
		cdf2 := float64(countAtMost(s2, v)) / n2

		if d := math.Abs(cdf1 - cdf2); d > maxD {
			maxD = d
		}
	}

	nEff := n1 * n2 / (n1 + n2)
	lambda := maxD * math.Sqrt(nEff)

	return maxD, ksPValue(lambda)
}

// ksPValue evaluates the truncated alternating Kolmogorov series
// 1 - 2 * sum_{k=1}^{10} (-1)^{k-1} exp(-2 k^2 lambda^2), clamped to [0, 1]
func ksPValue(lambda float64) float64 {
	sum := 0.0
	for k := 1; k <= 10; k++ {
		term := math.Exp(-2 * float64(k*k) * lambda * lambda)
		if k%2 == 0 {
			sum -= term
		} else {
			sum += term
		}
	}

	p := 1 - 2*sum
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}

// mergeDistinct merges two sorted samples into their sorted, deduplicated
// union of values
func mergeDistinct(s1, s2 []float64) []float64 {
	out := make([]float64, 0, len(s1)+len(s2))
	i, j := 0, 0
	for i < len(s1) || j < len(s2) {
		var v float64
		switch {
		case i >= len(s1):
			v = s2[j]
			j++
		case j >= len(s2):
			v = s1[i]
			i++
		case s1[i] <= s2[j]:
			v = s1[i]
			i++
		default:
			v = s2[j]
			j++
		}
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}

// countAtMost returns how many elements of the sorted sample are <= v
func countAtMost(sorted []float64, v float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > v })
}
