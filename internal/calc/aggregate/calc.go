package aggregate

import (
	"sort"

	"Rebar/internal/calc/bar"
)

// Line pairs a bar entry with its calculated result. A nil Result means
// the bar has not been processed yet and is skipped, not counted as zero.
type Line struct {
	Entry  bar.Entry   `json:"entry"`
	Result *bar.Result `json:"result"`
}

// ComponentSummary holds the rolled-up totals of one component.
type ComponentSummary struct {
	Component     string  `json:"component"`
	Bars          int     `json:"bars"`
	Count         int     `json:"count"`
	TotalLengthM  float64 `json:"total_length_m"`
	TotalWeightKg float64 `json:"total_weight_kg"`
}

// DiameterTotal is the per-diameter bucket of a project summary. Bars of
// different shapes but equal diameter share a bucket; schedules report by
// diameter.
type DiameterTotal struct {
	DiameterMM float64 `json:"diameter_mm"`
	LengthM    float64 `json:"length_m"`
	WeightKg   float64 `json:"weight_kg"`
}

// ProjectSummary is the project-wide steel roll-up.
type ProjectSummary struct {
	Components    []ComponentSummary `json:"components"`
	ByDiameter    []DiameterTotal    `json:"by_diameter"`
	TotalWeightKg float64            `json:"total_weight_kg"`
	TotalWeightT  float64            `json:"total_weight_t"`
}

// Component sums one component's calculated bars.
func Component(name string, lines []Line) ComponentSummary {
	sum := ComponentSummary{Component: name}
	for _, l := range lines {
		if l.Result == nil {
			continue
		}
		sum.Bars++
		sum.Count += l.Result.Count
		sum.TotalLengthM += l.Result.TotalLengthM
		sum.TotalWeightKg += l.Result.TotalWeightKg
	}
	return sum
}

// Project groups calculated bars by component and by diameter and totals
// the steel. The result is independent of input order: buckets accumulate
// commutatively and come out sorted.
func Project(lines []Line) ProjectSummary {
	byComponent := map[string][]Line{}
	byDiameter := map[float64]*DiameterTotal{}
	var summary ProjectSummary

	for _, l := range lines {
		byComponent[l.Entry.Component] = append(byComponent[l.Entry.Component], l)
		if l.Result == nil {
			continue
		}
		d := l.Entry.DiameterMM
		bucket, ok := byDiameter[d]
		if !ok {
			bucket = &DiameterTotal{DiameterMM: d}
			byDiameter[d] = bucket
		}
		bucket.LengthM += l.Result.TotalLengthM
		bucket.WeightKg += l.Result.TotalWeightKg
		summary.TotalWeightKg += l.Result.TotalWeightKg
	}

	names := make([]string, 0, len(byComponent))
	for name := range byComponent {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		summary.Components = append(summary.Components, Component(name, byComponent[name]))
	}

	for _, bucket := range byDiameter {
		summary.ByDiameter = append(summary.ByDiameter, *bucket)
	}
	sort.Slice(summary.ByDiameter, func(i, j int) bool {
		return summary.ByDiameter[i].DiameterMM < summary.ByDiameter[j].DiameterMM
	})

	summary.TotalWeightT = summary.TotalWeightKg / 1000.0
	return summary
}
