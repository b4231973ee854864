package shape

import (
	"errors"
	"fmt"
	"sort"
)

// ID identifies a bar shape in the catalog.
type ID string

const (
	Straight       ID = "straight"
	UBar           ID = "u-bar"
	Stirrup        ID = "stirrup"
	Cranked        ID = "cranked"
	LBar           ID = "l-bar"
	HookedStraight ID = "hooked-straight"
)

// Angle is a bend angle class in degrees.
type Angle int

const (
	Angle45  Angle = 45
	Angle90  Angle = 90
	Angle135 Angle = 135
	Angle180 Angle = 180
)

// RoundingPolicy selects how a resolved cutting length is rounded.
type RoundingPolicy int

const (
	// RoundNone keeps the exact millimeter value.
	RoundNone RoundingPolicy = iota
	// RoundUp5 rounds up to the nearest 5 mm.
	RoundUp5
)

// BarType tags component-methodology bars measured with segment slots
// (a..f, lap) instead of letter dimensions.
type BarType string

const (
	BarTypeSlabUBar     BarType = "slab-ubar"
	BarTypeDistribution BarType = "distribution"
	BarTypeMainStraight BarType = "main-straight"
)

// Definition describes one bar shape or component bar type. Downstream
// calculators must only consume these fields, never branch on the id.
type Definition struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Slots      []string       `json:"slots"`
	BendAngles []Angle        `json:"bend_angles"`
	Hook       bool           `json:"hook"`
	UTopology  bool           `json:"u_topology"`
	Rounding   RoundingPolicy `json:"rounding"`
}

var ErrUnknownShape = errors.New("unknown shape")

var catalog = map[ID]Definition{
	Straight: {
		ID:    string(Straight),
		Name:  "Straight bar",
		Slots: []string{"A"},
	},
	UBar: {
		ID:         string(UBar),
		Name:       "U-bar",
		Slots:      []string{"A", "B", "C"},
		BendAngles: []Angle{Angle90, Angle90},
		UTopology:  true,
	},
	Stirrup: {
		ID:         string(Stirrup),
		Name:       "Stirrup",
		Slots:      []string{"A", "B"},
		BendAngles: []Angle{Angle90, Angle90, Angle90, Angle135, Angle135},
		Hook:       true,
	},
	Cranked: {
		ID:         string(Cranked),
		Name:       "Cranked bar",
		Slots:      []string{"A", "B", "C", "D"},
		BendAngles: []Angle{Angle45, Angle45, Angle45, Angle45},
	},
	LBar: {
		ID:         string(LBar),
		Name:       "L-bar",
		Slots:      []string{"A", "B"},
		BendAngles: []Angle{Angle90},
	},
	HookedStraight: {
		ID:    string(HookedStraight),
		Name:  "Hooked straight bar",
		Slots: []string{"A"},
		Hook:  true,
	},
}

var barTypes = map[BarType]Definition{
	BarTypeSlabUBar: {
		ID:         string(BarTypeSlabUBar),
		Name:       "Slab U-bar",
		Slots:      []string{"a", "b", "c"},
		BendAngles: []Angle{Angle90, Angle90},
		UTopology:  true,
	},
	BarTypeDistribution: {
		ID:       string(BarTypeDistribution),
		Name:     "Distribution bar",
		Slots:    []string{"a"},
		Rounding: RoundUp5,
	},
	BarTypeMainStraight: {
		ID:    string(BarTypeMainStraight),
		Name:  "Main straight bar",
		Slots: []string{"a"},
	},
}

// Lookup returns the catalog definition for a shape id.
func Lookup(id ID) (Definition, error) {
	def, ok := catalog[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownShape, id)
	}
	return def, nil
}

// LookupBarType returns the definition for a component-methodology bar type.
func LookupBarType(t BarType) (Definition, error) {
	def, ok := barTypes[t]
	if !ok {
		return Definition{}, fmt.Errorf("%w: bar type %q", ErrUnknownShape, t)
	}
	return def, nil
}

// All returns every shape definition, ordered by id.
func All() []Definition {
	out := make([]Definition, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RequiredDimensionCount reports how many dimension slots the shape needs.
func RequiredDimensionCount(id ID) (int, error) {
	def, err := Lookup(id)
	if err != nil {
		return 0, err
	}
	return len(def.Slots), nil
}

// BendAngles returns the ordered bend-angle sequence of the shape.
func BendAngles(id ID) ([]Angle, error) {
	def, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return def.BendAngles, nil
}

// BendCount is the number of bends the shape carries by definition.
func (d Definition) BendCount() int {
	return len(d.BendAngles)
}

// Simple reports whether the bar is a single straight segment with no
// bends and no hook.
func (d Definition) Simple() bool {
	return len(d.BendAngles) == 0 && !d.Hook
}

// Complex reports whether the bar carries at least one bend.
func (d Definition) Complex() bool {
	return len(d.BendAngles) > 0
}
