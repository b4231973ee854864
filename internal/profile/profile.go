package profile

import (
	"time"

	"Rebar/internal/shape"
)

// Profile is a named bundle of code-standard numeric policy.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Standard  bool      `json:"standard"`
	Mult45    float64   `json:"mult_45"`
	Mult90    float64   `json:"mult_90"`
	Mult135   float64   `json:"mult_135"`
	HookMult  float64   `json:"hook_mult"`
	CoverMM   float64   `json:"cover_mm"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectConfig is the external configuration record bound to a project.
// A non-empty ProfileID references a profile; otherwise the embedded manual
// parameters apply (legacy configs carry them directly).
type ProjectConfig struct {
	CodeStandard string    `json:"code_standard"`
	ProfileID    string    `json:"profile_id"`
	CoverMM      float64   `json:"cover_mm"`
	HookMult     float64   `json:"hook_mult"`
	Mult45       float64   `json:"mult_45"`
	Mult90       float64   `json:"mult_90"`
	Mult135      float64   `json:"mult_135"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Source records where the effective parameters came from.
type Source string

const (
	SourceStandard Source = "standard"
	SourceCustom   Source = "custom"
	SourceManual   Source = "manual"
)

// Params is the resolved policy value handed to every calculation call.
// Calculators receive it explicitly; there is no global registry.
type Params struct {
	Mult45      float64   `json:"mult_45"`
	Mult90      float64   `json:"mult_90"`
	Mult135     float64   `json:"mult_135"`
	HookMult    float64   `json:"hook_mult"`
	CoverMM     float64   `json:"cover_mm"`
	Source      Source    `json:"source"`
	ProfileID   string    `json:"profile_id,omitempty"`
	ProfileName string    `json:"profile_name,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Overridable for deterministic tests.
var timeNow = time.Now

// Standards are the built-in standard profiles.
var Standards = []Profile{
	{
		ID:       "is2502",
		Name:     "IS 2502 general",
		Standard: true,
		Mult45:   1,
		Mult90:   2,
		Mult135:  3,
		HookMult: 9,
		CoverMM:  25,
	},
	{
		ID:       "bs8666",
		Name:     "BS 8666 scheduling",
		Standard: true,
		Mult45:   1,
		Mult90:   2,
		Mult135:  3,
		HookMult: 12,
		CoverMM:  30,
	},
}

// Find returns a standard profile by id.
func Find(id string) (Profile, bool) {
	for _, p := range Standards {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Default is the policy used when no profile and no manual parameters are
// bound: 2D per right-angle bend, 1D/3D for the 45 and 135 classes, 9D
// hooks, 25 mm cover.
func Default() Params {
	return Params{
		Mult45:   1,
		Mult90:   2,
		Mult135:  3,
		HookMult: 9,
		CoverMM:  25,
		Source:   SourceManual,
	}
}

// Resolve turns a project config (plus any custom profiles the caller owns)
// into the effective Params. Profile binding wins over embedded manual
// parameters; a dangling profile id falls back to manual.
func Resolve(cfg ProjectConfig, custom ...Profile) Params {
	if cfg.ProfileID != "" {
		if p, ok := Find(cfg.ProfileID); ok {
			return fromProfile(p)
		}
		for _, p := range custom {
			if p.ID == cfg.ProfileID {
				return fromProfile(p)
			}
		}
	}
	params := Default()
	if cfg.Mult45 > 0 {
		params.Mult45 = cfg.Mult45
	}
	if cfg.Mult90 > 0 {
		params.Mult90 = cfg.Mult90
	}
	if cfg.Mult135 > 0 {
		params.Mult135 = cfg.Mult135
	}
	if cfg.HookMult > 0 {
		params.HookMult = cfg.HookMult
	}
	if cfg.CoverMM > 0 {
		params.CoverMM = cfg.CoverMM
	}
	params.UpdatedAt = cfg.UpdatedAt
	return params
}

func fromProfile(p Profile) Params {
	source := SourceCustom
	if p.Standard {
		source = SourceStandard
	}
	return Params{
		Mult45:      p.Mult45,
		Mult90:      p.Mult90,
		Mult135:     p.Mult135,
		HookMult:    p.HookMult,
		CoverMM:     p.CoverMM,
		Source:      source,
		ProfileID:   p.ID,
		ProfileName: p.Name,
		UpdatedAt:   p.UpdatedAt,
	}
}

// MultiplierFor maps a bend angle class to its deduction multiplier.
// 180-degree bends use the 135 class, the steepest one scheduled.
func (p Params) MultiplierFor(angle shape.Angle) float64 {
	switch angle {
	case shape.Angle45:
		return p.Mult45
	case shape.Angle135, shape.Angle180:
		return p.Mult135
	default:
		return p.Mult90
	}
}

// Recent reports whether the effective parameters were updated within the
// given window. Manual parameters are never considered recent.
func (p Params) Recent(window time.Duration) bool {
	if p.Source == SourceManual || p.UpdatedAt.IsZero() {
		return false
	}
	return timeNow().Sub(p.UpdatedAt) <= window
}
