package bar

import (
	"fmt"

	"Rebar/internal/calc/barcount"
	"Rebar/internal/calc/cutting"
	"Rebar/internal/calc/deduction"
	"Rebar/internal/calc/measure"
	"Rebar/internal/calc/weight"
	"Rebar/internal/profile"
	"Rebar/internal/shape"
)

// Entry is one bar line as supplied by entry or import. Exactly one of
// Shape (letter-dimension dialect) or BarType (segment dialect) tags it.
type Entry struct {
	Name              string             `json:"name,omitempty"`
	Component         string             `json:"component,omitempty"`
	Shape             shape.ID           `json:"shape,omitempty"`
	BarType           shape.BarType      `json:"bar_type,omitempty"`
	DiameterMM        float64            `json:"diameter_mm"`
	SpacingMM         float64            `json:"spacing_mm"`
	SpanMM            float64            `json:"span_mm"`
	CoverMM           float64            `json:"cover_mm,omitempty"`
	Direction         measure.Direction  `json:"direction,omitempty"`
	Dimensions        map[string]float64 `json:"dimensions,omitempty"`
	CountOverride     int                `json:"count_override,omitempty"`
	BendCountOverride *int               `json:"bend_count_override,omitempty"`
}

// Step is one line of the derivation breakdown, enough for an external
// renderer to show the working without recomputing anything.
type Step struct {
	Description string  `json:"description"`
	Formula     string  `json:"formula"`
	Op          string  `json:"op"`
	Value       float64 `json:"value"`
	Units       string  `json:"units"`
	IsDeduction bool    `json:"is_deduction,omitempty"`
	IsHook      bool    `json:"is_hook,omitempty"`
}

// Result is the derived calculation for one bar. It is a pure function of
// (Entry, Geometry, Params) and is recomputed whenever any of them change.
type Result struct {
	MeasurementMM   float64 `json:"measurement_mm"`
	BendCount       int     `json:"bend_count"`
	DeductionMM     float64 `json:"deduction_mm"`
	CuttingLengthMM float64 `json:"cutting_length_mm"`
	Count           int     `json:"count"`
	TotalLengthM    float64 `json:"total_length_m"`
	UnitWeightKgM   float64 `json:"unit_weight_kg_m"`
	TotalWeightKg   float64 `json:"total_weight_kg"`
	Steps           []Step  `json:"steps"`
}

// Definition resolves the entry's shape or bar-type tag to its catalog
// definition.
func Definition(e Entry) (shape.Definition, error) {
	if e.Shape != "" {
		return shape.Lookup(e.Shape)
	}
	if e.BarType != "" {
		return shape.LookupBarType(e.BarType)
	}
	return shape.Definition{}, fmt.Errorf("%w: entry has no shape or bar type", shape.ErrUnknownShape)
}

// Dimensions returns the entry's dimensions, auto-deriving them from
// component geometry when the entry carries none.
func Dimensions(e Entry, g *measure.Geometry, def shape.Definition) map[string]float64 {
	if len(e.Dimensions) > 0 || g == nil {
		return measure.Normalize(e.Dimensions)
	}
	return g.Derive(e.Direction, def.UTopology)
}

// Missing lists the required dimension slots that are absent or zero.
// A missing slot is not an error: it is measured as 0 mm and flagged by the
// confidence scorer instead.
func Missing(def shape.Definition, dims map[string]float64) []string {
	d := measure.Normalize(dims)
	var missing []string
	for _, slot := range def.Slots {
		if d[lower(slot)] <= 0 {
			missing = append(missing, slot)
		}
	}
	return missing
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// Calculate runs the full per-bar pipeline: aggregate measurement, hook
// allowance, bend deduction, cutting length with the shape's rounding
// policy, bar count, then length and weight.
func Calculate(e Entry, g *measure.Geometry, p profile.Params) (Result, error) {
	def, err := Definition(e)
	if err != nil {
		return Result{}, err
	}

	dims := Dimensions(e, g, def)
	total := measure.Total(dims, def.UTopology)

	var steps []Step
	steps = append(steps, Step{
		Description: "Aggregate measured segments",
		Formula:     sumFormula(def.UTopology),
		Op:          "sum",
		Value:       total,
		Units:       "mm",
	})

	if def.Hook && p.HookMult > 0 {
		hook := 2 * p.HookMult * e.DiameterMM
		total += hook
		steps = append(steps, Step{
			Description: "Add end hooks",
			Formula:     fmt.Sprintf("2 x %.1f x %.0f", p.HookMult, e.DiameterMM),
			Op:          "add",
			Value:       hook,
			Units:       "mm",
			IsHook:      true,
		})
	}

	bends := deduction.FromShape(def)
	if e.BendCountOverride != nil {
		bends = deduction.Override(*e.BendCountOverride)
	}
	ded := deduction.Total(bends, e.DiameterMM, p)
	bendCount := deduction.CountOf(bends)
	if ded > 0 {
		steps = append(steps, Step{
			Description: fmt.Sprintf("Deduct %d bend(s)", bendCount),
			Formula:     fmt.Sprintf("%d x m(angle) x %.0f", bendCount, e.DiameterMM),
			Op:          "subtract",
			Value:       ded,
			Units:       "mm",
			IsDeduction: true,
		})
	}

	cut := cutting.Resolve(total, ded, def.Rounding)
	steps = append(steps, Step{
		Description: "Resolve cutting length",
		Formula:     fmt.Sprintf("%.0f - %.0f", total, ded),
		Op:          "round",
		Value:       cut,
		Units:       "mm",
	})

	cover := e.CoverMM
	if cover <= 0 {
		cover = p.CoverMM
	}
	count := barcount.Count(e.SpanMM, e.SpacingMM, cover, e.CountOverride)
	countFormula := "single bar"
	if e.CountOverride > 0 {
		countFormula = "manual override"
	} else if e.SpanMM > 0 && e.SpacingMM > 0 {
		countFormula = fmt.Sprintf("ceil((%.0f - 2 x %.0f) / %.0f) + 1", e.SpanMM, cover, e.SpacingMM)
	}
	steps = append(steps, Step{
		Description: "Estimate bar count",
		Formula:     countFormula,
		Op:          "count",
		Value:       float64(count),
		Units:       "nos",
	})

	lengthM := weight.TotalLengthM(cut, count)
	unitW := weight.UnitWeight(e.DiameterMM)
	weightKg := weight.TotalWeightKg(lengthM, unitW)
	steps = append(steps, Step{
		Description: "Total weight",
		Formula:     fmt.Sprintf("%.3f m x %.3f kg/m", lengthM, unitW),
		Op:          "multiply",
		Value:       weightKg,
		Units:       "kg",
	})

	return Result{
		MeasurementMM:   total,
		BendCount:       bendCount,
		DeductionMM:     ded,
		CuttingLengthMM: cut,
		Count:           count,
		TotalLengthM:    lengthM,
		UnitWeightKgM:   unitW,
		TotalWeightKg:   weightKg,
		Steps:           steps,
	}, nil
}

func sumFormula(uTopology bool) string {
	if uTopology {
		return "a + 2b + 2c + 2d + e + f + lap"
	}
	return "a + b + c + d + e + f + lap"
}
