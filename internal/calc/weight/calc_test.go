package weight

import (
	"math"
	"testing"
)

func TestUnitWeight_TableWins(t *testing.T) {
	if got := UnitWeight(12); got != 0.889 {
		t.Fatalf("UnitWeight(12) = %v, want tabulated 0.889", got)
	}
}

func TestUnitWeight_FormulaFallback(t *testing.T) {
	got := UnitWeight(14)
	want := 14.0 * 14.0 / 162.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("UnitWeight(14) = %v, want %v", got, want)
	}
	if math.Abs(got-1.2099) > 0.0001 {
		t.Fatalf("UnitWeight(14) = %v, want ~1.2099", got)
	}
}

func TestUnitWeight_FractionalDiameterUsesFormula(t *testing.T) {
	got := UnitWeight(12.5)
	want := 12.5 * 12.5 / 162.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("UnitWeight(12.5) = %v, want formula %v", got, want)
	}
}

func TestIsStandard(t *testing.T) {
	for _, d := range StandardDiameters {
		if !IsStandard(float64(d)) {
			t.Errorf("IsStandard(%d) = false, want true", d)
		}
	}
	for _, d := range []float64{14, 7, 12.5, 0} {
		if IsStandard(d) {
			t.Errorf("IsStandard(%v) = true, want false", d)
		}
	}
}

func TestLengthAndWeightChain(t *testing.T) {
	lengthM := TotalLengthM(1660, 21)
	if math.Abs(lengthM-34.86) > 1e-9 {
		t.Fatalf("TotalLengthM = %v, want 34.86", lengthM)
	}
	w := TotalWeightKg(lengthM, UnitWeight(12))
	if math.Abs(w-34.86*0.889) > 1e-9 {
		t.Fatalf("TotalWeightKg = %v, want %v", w, 34.86*0.889)
	}
}
