package measure

import "strings"

// Segment slot keys. Letter-dialect dimensions (A..D) normalize onto the
// same keys, so one aggregation rule serves both entry styles.
const (
	SlotA   = "a"
	SlotB   = "b"
	SlotC   = "c"
	SlotD   = "d"
	SlotE   = "e"
	SlotF   = "f"
	SlotLap = "lap"
)

// Side of a slab panel, used to key beam widths and top extensions.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Direction a component bar runs in.
type Direction string

const (
	DirectionX Direction = "x"
	DirectionY Direction = "y"
)

// Geometry is the component geometry needed to auto-derive segment lengths
// for slab U-bars and distribution bars.
type Geometry struct {
	SpanXMM        float64          `json:"span_x_mm"`
	SpanYMM        float64          `json:"span_y_mm"`
	CoverMM        float64          `json:"cover_mm"`
	DepthMM        float64          `json:"depth_mm"`
	BeamWidthMM    map[Side]float64 `json:"beam_width_mm"`
	TopExtensionMM map[Side]float64 `json:"top_extension_mm"`
}

// Normalize lower-cases slot labels so the letter dialect (A..D) and the
// segment dialect (a..f, lap) share one key space. Missing slots stay
// missing; readers treat them as zero.
func Normalize(dims map[string]float64) map[string]float64 {
	if dims == nil {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(dims))
	for k, v := range dims {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Total sums the labeled segments into the raw pre-deduction length.
// The U-topology rule doubles the b/c/d legs, which occur once at each end
// of a U-shaped bar; with b=c=d=0 it degenerates to the standard sum.
func Total(dims map[string]float64, uTopology bool) float64 {
	d := Normalize(dims)
	legFactor := 1.0
	if uTopology {
		legFactor = 2.0
	}
	return d[SlotA] +
		legFactor*d[SlotB] +
		legFactor*d[SlotC] +
		legFactor*d[SlotD] +
		d[SlotE] + d[SlotF] + d[SlotLap]
}

// ends returns the two support sides a bar running in dir crosses.
func ends(dir Direction) (Side, Side) {
	if dir == DirectionY {
		return SideTop, SideBottom
	}
	return SideLeft, SideRight
}

func (g Geometry) span(dir Direction) float64 {
	if dir == DirectionY {
		return g.SpanYMM
	}
	return g.SpanXMM
}

// DeriveUBar computes the segment lengths of a slab U-bar from component
// geometry: a is the span, b the vertical leg (depth less top and bottom
// cover), c the horizontal return into the support beam, e/f the per-end
// top extensions. The return leg c is averaged over the two end supports
// because the doubled-leg rule assumes symmetric ends. Every subtraction
// clamps at zero.
//
// Known limitation: for extension-heavy panels this doubled-leg total has
// been observed to fall short of an external reference computation by an
// unexplained extra length term; the rule is kept as scheduled pending
// domain clarification.
func (g Geometry) DeriveUBar(dir Direction) map[string]float64 {
	s1, s2 := ends(dir)
	c1 := nonneg(g.BeamWidthMM[s1] - g.CoverMM)
	c2 := nonneg(g.BeamWidthMM[s2] - g.CoverMM)
	return map[string]float64{
		SlotA: nonneg(g.span(dir)),
		SlotB: nonneg(g.DepthMM - 2*g.CoverMM),
		SlotC: (c1 + c2) / 2,
		SlotE: nonneg(g.TopExtensionMM[s1]),
		SlotF: nonneg(g.TopExtensionMM[s2]),
	}
}

// DeriveDistribution computes the segment lengths of a distribution bar:
// the clear span between covers plus the per-end top extensions.
func (g Geometry) DeriveDistribution(dir Direction) map[string]float64 {
	s1, s2 := ends(dir)
	return map[string]float64{
		SlotA: nonneg(g.span(dir) - 2*g.CoverMM),
		SlotE: nonneg(g.TopExtensionMM[s1]),
		SlotF: nonneg(g.TopExtensionMM[s2]),
	}
}

// Derive picks the derivation rule from the bar's topology flag.
func (g Geometry) Derive(dir Direction, uTopology bool) map[string]float64 {
	if uTopology {
		return g.DeriveUBar(dir)
	}
	return g.DeriveDistribution(dir)
}

// A beam narrower than its cover is clamped, not propagated as a negative
// length.
func nonneg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
