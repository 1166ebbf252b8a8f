package drift

import (
	"math"
)

// proportionFloor substitutes for categories absent (or zero) on one side,
// avoiding log(0) and division by zero
const proportionFloor = 0.001

// PSI computes the Population Stability Index between two category ->
// proportion distributions.
//
// For the union of categories in either distribution, a category missing (or
// non-positive) on one side contributes with the floor proportion 0.001
// instead. PSI is non-negative when both inputs sum to 1; identical
// distributions score exactly 0. Conventional reading: < 0.1 stable,
// 0.1 - 0.25 moderate shift, > 0.25 major shift.
func PSI(baselineDist, currentDist map[string]float64) float64 {
	categories := make(map[string]bool, len(baselineDist)+len(currentDist))
	for c := range baselineDist {
		categories[c] = true
	}
	for c := range currentDist {
		categories[c] = true
	}

	psi := 0.0
	for c := range categories {
		baseP := flooredProportion(baselineDist, c)
		curP := flooredProportion(currentDist, c)
		psi += (curP - baseP) * math.Log(curP/baseP)
	}
	return psi
}

func flooredProportion(dist map[string]float64, category string) float64 {
	p, ok := dist[category]
	if !ok || p <= 0 {
		return proportionFloor
	}
	return p
}

// Proportions converts a frequency table with the given total into a
// category -> proportion distribution. A non-positive total yields an empty
// distribution.
func Proportions(frequencies map[string]int, total int) map[string]float64 {
	dist := make(map[string]float64, len(frequencies))
	if total <= 0 {
		return dist
	}
	for c, n := range frequencies {
		dist[c] = float64(n) / float64(total)
	}
	return dist
}
