package measure

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotal_StandardRule(t *testing.T) {
	dims := map[string]float64{"a": 1000, "b": 200, "c": 150, "d": 50, "e": 75, "f": 75, "lap": 300}
	got := Total(dims, false)
	if !approx(got, 1850) {
		t.Fatalf("Total = %v, want 1850", got)
	}
}

func TestTotal_UBarRule(t *testing.T) {
	dims := map[string]float64{"a": 1000, "b": 200, "c": 150, "d": 50, "e": 75, "f": 75, "lap": 300}
	got := Total(dims, true)
	// a + 2b + 2c + 2d + e + f + lap
	if !approx(got, 2250) {
		t.Fatalf("Total = %v, want 2250", got)
	}
}

func TestTotal_RulesAgreeWithoutLegs(t *testing.T) {
	dims := map[string]float64{"a": 1200, "e": 100, "f": 100, "lap": 50}
	std := Total(dims, false)
	ubar := Total(dims, true)
	if !approx(std, ubar) {
		t.Fatalf("rules disagree with b=c=d=0: standard %v, u-bar %v", std, ubar)
	}
}

func TestTotal_MissingSlotsAreZero(t *testing.T) {
	if got := Total(map[string]float64{"a": 500}, true); !approx(got, 500) {
		t.Fatalf("Total = %v, want 500", got)
	}
	if got := Total(nil, false); got != 0 {
		t.Fatalf("Total(nil) = %v, want 0", got)
	}
}

func TestNormalize_LetterDialect(t *testing.T) {
	dims := Normalize(map[string]float64{"A": 1000, "B": 200})
	if dims["a"] != 1000 || dims["b"] != 200 {
		t.Fatalf("Normalize letter dialect failed: %v", dims)
	}
}

func TestDeriveUBar(t *testing.T) {
	g := Geometry{
		SpanXMM: 3000,
		CoverMM: 25,
		DepthMM: 150,
		BeamWidthMM: map[Side]float64{
			SideLeft:  230,
			SideRight: 230,
		},
		TopExtensionMM: map[Side]float64{
			SideLeft:  100,
			SideRight: 120,
		},
	}
	dims := g.DeriveUBar(DirectionX)
	if !approx(dims[SlotA], 3000) {
		t.Errorf("a = %v, want 3000", dims[SlotA])
	}
	if !approx(dims[SlotB], 100) {
		t.Errorf("b = %v, want depth - 2*cover = 100", dims[SlotB])
	}
	if !approx(dims[SlotC], 205) {
		t.Errorf("c = %v, want 205", dims[SlotC])
	}
	if !approx(dims[SlotE], 100) || !approx(dims[SlotF], 120) {
		t.Errorf("extensions = %v/%v, want 100/120", dims[SlotE], dims[SlotF])
	}
}

func TestDeriveUBar_ClampsNegatives(t *testing.T) {
	g := Geometry{
		SpanYMM:     2000,
		CoverMM:     40,
		DepthMM:     60, // thinner than twice the cover
		BeamWidthMM: map[Side]float64{SideTop: 20, SideBottom: 20},
	}
	dims := g.DeriveUBar(DirectionY)
	if dims[SlotB] != 0 {
		t.Errorf("b = %v, want clamped 0", dims[SlotB])
	}
	if dims[SlotC] != 0 {
		t.Errorf("c = %v, want clamped 0 (beam narrower than cover)", dims[SlotC])
	}
}

func TestDeriveDistribution(t *testing.T) {
	g := Geometry{
		SpanXMM:        2400,
		CoverMM:        20,
		TopExtensionMM: map[Side]float64{SideLeft: 50, SideRight: 50},
	}
	dims := g.DeriveDistribution(DirectionX)
	if !approx(dims[SlotA], 2360) {
		t.Errorf("a = %v, want span - 2*cover = 2360", dims[SlotA])
	}
	if !approx(dims[SlotE]+dims[SlotF], 100) {
		t.Errorf("extensions sum = %v, want 100", dims[SlotE]+dims[SlotF])
	}
}

func TestDerive_SelectsByTopology(t *testing.T) {
	g := Geometry{SpanXMM: 1000, CoverMM: 10, DepthMM: 100}
	u := g.Derive(DirectionX, true)
	if _, ok := u[SlotB]; !ok {
		t.Error("U topology derivation should produce a b leg")
	}
	d := g.Derive(DirectionX, false)
	if _, ok := d[SlotB]; ok {
		t.Error("distribution derivation should not produce a b leg")
	}
}
