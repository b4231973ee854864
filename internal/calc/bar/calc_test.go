package bar

import (
	"errors"
	"math"
	"testing"

	"Rebar/internal/calc/measure"
	"Rebar/internal/profile"
	"Rebar/internal/shape"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate_UBarPipeline(t *testing.T) {
	e := Entry{
		Shape:      shape.UBar,
		DiameterMM: 10,
		Dimensions: map[string]float64{"A": 1000, "B": 200, "C": 150},
	}
	res, err := Calculate(e, nil, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	// a + 2b + 2c = 1000 + 400 + 300
	if !approx(res.MeasurementMM, 1700) {
		t.Errorf("MeasurementMM = %v, want 1700", res.MeasurementMM)
	}
	// two right-angle bends at 2d
	if res.BendCount != 2 || !approx(res.DeductionMM, 40) {
		t.Errorf("deduction = %d bends / %v mm, want 2 / 40", res.BendCount, res.DeductionMM)
	}
	if !approx(res.CuttingLengthMM, 1660) {
		t.Errorf("CuttingLengthMM = %v, want 1660", res.CuttingLengthMM)
	}
	if res.Count != 1 {
		t.Errorf("Count = %d, want 1 (not spacing-governed)", res.Count)
	}
	if !approx(res.TotalLengthM, 1.66) {
		t.Errorf("TotalLengthM = %v, want 1.66", res.TotalLengthM)
	}
	if !approx(res.UnitWeightKgM, 0.617) {
		t.Errorf("UnitWeightKgM = %v, want 0.617", res.UnitWeightKgM)
	}
	if !approx(res.TotalWeightKg, 1.66*0.617) {
		t.Errorf("TotalWeightKg = %v, want %v", res.TotalWeightKg, 1.66*0.617)
	}
}

func TestCalculate_SpacingGovernedCount(t *testing.T) {
	e := Entry{
		Shape:      shape.Straight,
		DiameterMM: 12,
		SpanMM:     3000,
		SpacingMM:  150,
		CoverMM:    20,
		Dimensions: map[string]float64{"A": 3000},
	}
	res, err := Calculate(e, nil, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 21 {
		t.Fatalf("Count = %d, want 21", res.Count)
	}
}

func TestCalculate_HookedStraightAddsHooks(t *testing.T) {
	e := Entry{
		Shape:      shape.HookedStraight,
		DiameterMM: 10,
		Dimensions: map[string]float64{"A": 1000},
	}
	res, err := Calculate(e, nil, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	// 1000 + 2 x 9d hooks
	if !approx(res.MeasurementMM, 1180) {
		t.Fatalf("MeasurementMM = %v, want 1180", res.MeasurementMM)
	}
	var hookStep bool
	for _, s := range res.Steps {
		if s.IsHook {
			hookStep = true
			if !approx(s.Value, 180) {
				t.Errorf("hook step value = %v, want 180", s.Value)
			}
		}
	}
	if !hookStep {
		t.Error("expected an IsHook step")
	}
}

func TestCalculate_BendCountOverrideWins(t *testing.T) {
	two := 2
	e := Entry{
		Shape:             shape.Straight,
		DiameterMM:        10,
		Dimensions:        map[string]float64{"A": 1000},
		BendCountOverride: &two,
	}
	res, err := Calculate(e, nil, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	if res.BendCount != 2 || !approx(res.DeductionMM, 40) {
		t.Fatalf("override deduction = %d / %v, want 2 / 40", res.BendCount, res.DeductionMM)
	}
}

func TestCalculate_DistributionRoundsUp5(t *testing.T) {
	e := Entry{
		BarType:    shape.BarTypeDistribution,
		DiameterMM: 8,
		Dimensions: map[string]float64{"a": 1232},
	}
	res, err := Calculate(e, nil, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !approx(res.CuttingLengthMM, 1235) {
		t.Fatalf("CuttingLengthMM = %v, want 1235", res.CuttingLengthMM)
	}
}

func TestCalculate_GeometryDerivedDimensions(t *testing.T) {
	g := &measure.Geometry{
		SpanXMM:     3000,
		CoverMM:     25,
		DepthMM:     150,
		BeamWidthMM: map[measure.Side]float64{measure.SideLeft: 230, measure.SideRight: 230},
	}
	e := Entry{
		BarType:    shape.BarTypeSlabUBar,
		DiameterMM: 8,
		Direction:  measure.DirectionX,
	}
	res, err := Calculate(e, g, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	// a + 2b + 2c = 3000 + 2*100 + 2*205
	if !approx(res.MeasurementMM, 3610) {
		t.Fatalf("MeasurementMM = %v, want 3610", res.MeasurementMM)
	}
}

func TestCalculate_MissingDimensionsAreZeroNotFatal(t *testing.T) {
	e := Entry{
		Shape:      shape.UBar,
		DiameterMM: 10,
		Dimensions: map[string]float64{"A": 1000}, // B and C missing
	}
	res, err := Calculate(e, nil, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !approx(res.MeasurementMM, 1000) {
		t.Fatalf("MeasurementMM = %v, want 1000 with legs as 0", res.MeasurementMM)
	}
}

func TestCalculate_UnknownShape(t *testing.T) {
	_, err := Calculate(Entry{Shape: "z-bar", DiameterMM: 10}, nil, profile.Default())
	if !errors.Is(err, shape.ErrUnknownShape) {
		t.Fatalf("error = %v, want ErrUnknownShape", err)
	}
	_, err = Calculate(Entry{DiameterMM: 10}, nil, profile.Default())
	if !errors.Is(err, shape.ErrUnknownShape) {
		t.Fatalf("untagged entry error = %v, want ErrUnknownShape", err)
	}
}

func TestMissing(t *testing.T) {
	def, _ := shape.Lookup(shape.UBar)
	missing := Missing(def, map[string]float64{"A": 1000, "B": 0})
	if len(missing) != 2 {
		t.Fatalf("Missing = %v, want [B C]", missing)
	}
	if missing[0] != "B" || missing[1] != "C" {
		t.Errorf("Missing = %v, want [B C]", missing)
	}
}

func TestCalculate_StepsOrderAndFlags(t *testing.T) {
	e := Entry{
		Shape:      shape.LBar,
		DiameterMM: 16,
		Dimensions: map[string]float64{"A": 800, "B": 300},
	}
	res, err := Calculate(e, nil, profile.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Steps) < 4 {
		t.Fatalf("Steps = %d, want at least sum/deduct/round/count", len(res.Steps))
	}
	if res.Steps[0].Op != "sum" {
		t.Errorf("first step op = %s, want sum", res.Steps[0].Op)
	}
	var dedSteps int
	for _, s := range res.Steps {
		if s.IsDeduction {
			dedSteps++
			if !approx(s.Value, 32) { // 1 bend x 2 x 16
				t.Errorf("deduction step value = %v, want 32", s.Value)
			}
		}
	}
	if dedSteps != 1 {
		t.Errorf("deduction steps = %d, want 1", dedSteps)
	}
}
