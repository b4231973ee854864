package bar

// Delta compares two calculations of the same bar, e.g. under two code
// profiles. Difference and percent change are display metrics and are the
// only outputs allowed to go negative.
type Delta struct {
	DifferenceMM    float64 `json:"difference_mm"`
	DifferenceKg    float64 `json:"difference_kg"`
	PercentChangeKg float64 `json:"percent_change_kg"`
}

// Compare reports how much b deviates from the baseline a.
func Compare(a, b Result) Delta {
	d := Delta{
		DifferenceMM: b.CuttingLengthMM - a.CuttingLengthMM,
		DifferenceKg: b.TotalWeightKg - a.TotalWeightKg,
	}
	if a.TotalWeightKg != 0 {
		d.PercentChangeKg = d.DifferenceKg / a.TotalWeightKg * 100
	}
	return d
}
