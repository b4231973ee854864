package confidence

import (
	"fmt"
	"strings"
	"time"

	"Rebar/internal/calc/bar"
	"Rebar/internal/calc/measure"
	"Rebar/internal/calc/weight"
	"Rebar/internal/profile"
	"Rebar/internal/shape"
)

// Level buckets the score.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

const (
	baseScore     = 50
	recencyWindow = 30 * 24 * time.Hour
)

// Factor is one weighted, independently evaluated input to the score.
type Factor struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Detail string `json:"detail"`
}

// Attribution records which parameters the calculation actually used.
type Attribution struct {
	ProfileID   string         `json:"profile_id,omitempty"`
	ProfileName string         `json:"profile_name,omitempty"`
	ProfileType profile.Source `json:"profile_type"`
	Params      profile.Params `json:"params"`
}

// Result is the advisory confidence rating attached to a bar calculation.
// It never feeds back into the numeric pipeline.
type Result struct {
	Score   int         `json:"score"`
	Level   Level       `json:"level"`
	Factors []Factor    `json:"factors"`
	Source  Attribution `json:"source"`
}

// input is what every evaluator sees.
type input struct {
	entry   bar.Entry
	def     shape.Definition
	hasDef  bool
	missing []string
	params  profile.Params
}

type evaluator func(input) Factor

// The factor list is a pure reduction: each evaluator yields one weighted
// factor, the weights sum once at the end, so evaluation order never
// affects the score.
var evaluators = []evaluator{
	profileSource,
	shapeComplexity,
	dimensionCompleteness,
	diameterStandardness,
	profileRecency,
}

// Score rates how auditable a bar calculation is, from base 50 with fixed
// per-factor weights, clamped to [0,100].
func Score(e bar.Entry, g *measure.Geometry, p profile.Params) Result {
	in := input{entry: e, params: p}
	if def, err := bar.Definition(e); err == nil {
		in.def = def
		in.hasDef = true
		in.missing = bar.Missing(def, bar.Dimensions(e, g, def))
	}

	score := baseScore
	factors := make([]Factor, 0, len(evaluators))
	for _, eval := range evaluators {
		f := eval(in)
		factors = append(factors, f)
		score += f.Weight
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:   score,
		Level:   levelOf(score),
		Factors: factors,
		Source: Attribution{
			ProfileID:   p.ProfileID,
			ProfileName: p.ProfileName,
			ProfileType: p.Source,
			Params:      p,
		},
	}
}

func levelOf(score int) Level {
	switch {
	case score >= 80:
		return LevelHigh
	case score >= 60:
		return LevelMedium
	default:
		return LevelLow
	}
}

func profileSource(in input) Factor {
	f := Factor{Name: "profile_source"}
	switch in.params.Source {
	case profile.SourceStandard:
		f.Weight = 25
		f.Detail = fmt.Sprintf("standard profile %s", in.params.ProfileID)
	case profile.SourceCustom:
		f.Weight = 0
		f.Detail = fmt.Sprintf("custom profile %s", in.params.ProfileID)
	default:
		f.Weight = -15
		f.Detail = "manual parameters, no profile bound"
	}
	return f
}

func shapeComplexity(in input) Factor {
	f := Factor{Name: "shape_complexity"}
	switch {
	case !in.hasDef:
		f.Detail = "shape unknown"
	case in.def.Simple():
		f.Weight = 10
		f.Detail = "single straight segment"
	case in.def.Complex():
		f.Weight = -10
		f.Detail = fmt.Sprintf("%d bend(s)", in.def.BendCount())
	default:
		f.Detail = "hooked straight segment"
	}
	return f
}

// The score penalty is a fixed -20 however many slots are missing; the
// missing count only enriches the descriptor text.
func dimensionCompleteness(in input) Factor {
	f := Factor{Name: "dimension_completeness"}
	if in.hasDef && len(in.missing) == 0 {
		f.Weight = 15
		f.Detail = "all required dimensions present"
		return f
	}
	f.Weight = -20
	if len(in.missing) > 0 {
		f.Detail = fmt.Sprintf("%d missing: %s", len(in.missing), strings.Join(in.missing, ", "))
	} else {
		f.Detail = "required dimensions unknown"
	}
	return f
}

func diameterStandardness(in input) Factor {
	f := Factor{Name: "diameter_standardness"}
	if weight.IsStandard(in.entry.DiameterMM) {
		f.Weight = 5
		f.Detail = fmt.Sprintf("%.0f mm is a standard diameter", in.entry.DiameterMM)
	} else {
		f.Weight = -10
		f.Detail = fmt.Sprintf("%.1f mm is outside the standard set", in.entry.DiameterMM)
	}
	return f
}

func profileRecency(in input) Factor {
	f := Factor{Name: "profile_recency"}
	if in.params.Recent(recencyWindow) {
		f.Weight = 5
		f.Detail = "profile updated within 30 days"
	} else {
		f.Detail = "profile not recently reviewed"
	}
	return f
}
