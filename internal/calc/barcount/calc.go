package barcount

import "math"

// Count derives the number of bars spanning a member. Round-up is
// deliberate: any remainder of effectiveSpan/spacing needs one more bar to
// cover it, so a 2960/150 split takes 20 spaces and 21 bars, not 20.
//
// A manual override always wins. Spacing or span of zero means the bar is
// not spacing-governed and counts once.
func Count(spanMM, spacingMM, coverMM float64, override int) int {
	if override > 0 {
		return override
	}
	if spanMM <= 0 || spacingMM <= 0 {
		return 1
	}
	effective := spanMM - 2*coverMM
	if effective <= 0 {
		return 1
	}
	return int(math.Ceil(effective/spacingMM)) + 1
}
