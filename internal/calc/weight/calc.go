package weight

import "math"

// Standard rebar diameters in mm, the canonical enumerated set.
var StandardDiameters = []int{6, 8, 10, 12, 16, 20, 25, 32}

// Tabulated unit weights in kg/m for the standard set. The table always
// takes precedence over the formula fallback.
var unitWeights = map[int]float64{
	6:  0.222,
	8:  0.395,
	10: 0.617,
	12: 0.889,
	16: 1.580,
	20: 2.469,
	25: 3.858,
	32: 6.321,
}

// UnitWeight resolves the per-meter weight of a bar diameter: table lookup
// first, then the d^2/162 engineering approximation for diameters outside
// the standard set.
func UnitWeight(diameterMM float64) float64 {
	if w, ok := unitWeights[int(diameterMM)]; ok && diameterMM == math.Trunc(diameterMM) {
		return w
	}
	return diameterMM * diameterMM / 162.0
}

// IsStandard reports whether the diameter belongs to the canonical set.
func IsStandard(diameterMM float64) bool {
	if diameterMM != math.Trunc(diameterMM) {
		return false
	}
	_, ok := unitWeights[int(diameterMM)]
	return ok
}

// TotalLengthM converts one cutting length and a bar count into meters.
func TotalLengthM(cuttingLengthMM float64, count int) float64 {
	return cuttingLengthMM * float64(count) / 1000.0
}

// TotalWeightKg multiplies a total length in meters by the unit weight.
func TotalWeightKg(totalLengthM, unitWeightKgM float64) float64 {
	return totalLengthM * unitWeightKgM
}
