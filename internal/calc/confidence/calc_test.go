package confidence

import (
	"testing"
	"time"

	"Rebar/internal/calc/bar"
	"Rebar/internal/profile"
	"Rebar/internal/shape"
)

func standardParams(updated time.Time) profile.Params {
	p := profile.Resolve(profile.ProjectConfig{ProfileID: "is2502"})
	p.UpdatedAt = updated
	return p
}

func TestScore_ClampsTo100(t *testing.T) {
	// Standard profile, simple shape, complete dimensions, standard
	// diameter, profile updated yesterday: 50+25+10+15+5+5 clamps to 100.
	e := bar.Entry{
		Shape:      shape.Straight,
		DiameterMM: 12,
		Dimensions: map[string]float64{"A": 1200},
	}
	res := Score(e, nil, standardParams(time.Now().Add(-24*time.Hour)))
	if res.Score != 100 {
		t.Fatalf("Score = %d, want exactly 100 after clamping", res.Score)
	}
	if res.Level != LevelHigh {
		t.Errorf("Level = %s, want high", res.Level)
	}
}

func TestScore_ClampsAtZero(t *testing.T) {
	// Manual params, complex shape, missing dimensions, odd diameter:
	// 50-15-10-20-10 = -5 clamps to 0.
	e := bar.Entry{
		Shape:      shape.Stirrup,
		DiameterMM: 14,
	}
	res := Score(e, nil, profile.Default())
	if res.Score != 0 {
		t.Fatalf("Score = %d, want 0 after clamping", res.Score)
	}
	if res.Level != LevelLow {
		t.Errorf("Level = %s, want low", res.Level)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	entries := []bar.Entry{
		{},
		{Shape: shape.Straight, DiameterMM: 12, Dimensions: map[string]float64{"A": 1}},
		{Shape: "bogus", DiameterMM: 99},
		{BarType: shape.BarTypeDistribution, DiameterMM: 8, Dimensions: map[string]float64{"a": 100}},
	}
	params := []profile.Params{
		profile.Default(),
		standardParams(time.Now()),
		standardParams(time.Time{}),
	}
	for _, e := range entries {
		for _, p := range params {
			res := Score(e, nil, p)
			if res.Score < 0 || res.Score > 100 {
				t.Errorf("Score = %d out of range for %+v", res.Score, e)
			}
		}
	}
}

func TestScore_MissingDimensionPenaltyIsFixed(t *testing.T) {
	one := Score(bar.Entry{
		Shape:      shape.UBar,
		DiameterMM: 12,
		Dimensions: map[string]float64{"A": 1000, "B": 200}, // C missing
	}, nil, profile.Default())
	two := Score(bar.Entry{
		Shape:      shape.UBar,
		DiameterMM: 12,
		Dimensions: map[string]float64{"A": 1000}, // B and C missing
	}, nil, profile.Default())
	if one.Score != two.Score {
		t.Fatalf("penalty must not scale with missing count: %d vs %d", one.Score, two.Score)
	}
	var d1, d2 string
	for _, f := range one.Factors {
		if f.Name == "dimension_completeness" {
			d1 = f.Detail
		}
	}
	for _, f := range two.Factors {
		if f.Name == "dimension_completeness" {
			d2 = f.Detail
		}
	}
	if d1 == d2 {
		t.Error("descriptor text should reflect how many slots are missing")
	}
}

func TestScore_Levels(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{100, LevelHigh},
		{80, LevelHigh},
		{79, LevelMedium},
		{60, LevelMedium},
		{59, LevelLow},
		{0, LevelLow},
	}
	for _, tt := range tests {
		if got := levelOf(tt.score); got != tt.want {
			t.Errorf("levelOf(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestScore_Attribution(t *testing.T) {
	p := standardParams(time.Now())
	res := Score(bar.Entry{Shape: shape.Straight, DiameterMM: 12}, nil, p)
	if res.Source.ProfileID != "is2502" || res.Source.ProfileType != profile.SourceStandard {
		t.Fatalf("attribution = %+v, want is2502/standard", res.Source)
	}
	if res.Source.Params.Mult90 != 2 {
		t.Errorf("attribution params = %+v, want the ones actually used", res.Source.Params)
	}
}

func TestScore_FactorCountStable(t *testing.T) {
	res := Score(bar.Entry{Shape: shape.Straight, DiameterMM: 12}, nil, profile.Default())
	if len(res.Factors) != 5 {
		t.Fatalf("Factors = %d, want all 5 evaluated", len(res.Factors))
	}
}
