package cutting

import (
	"math"

	"Rebar/internal/shape"
)

// Resolve combines the aggregated measurement and the bend deduction into
// the final cutting length, clamped at zero, then applies the shape-bound
// rounding policy.
func Resolve(measurementMM, deductionMM float64, policy shape.RoundingPolicy) float64 {
	v := measurementMM - deductionMM
	if v < 0 {
		v = 0
	}
	return Round(v, policy)
}

// Round applies a rounding policy to a millimeter value. Exact multiples
// of the rounding step pass through unchanged.
func Round(valueMM float64, policy shape.RoundingPolicy) float64 {
	switch policy {
	case shape.RoundUp5:
		return math.Ceil(valueMM/5) * 5
	default:
		return valueMM
	}
}
