package deduction

import (
	"Rebar/internal/profile"
	"Rebar/internal/shape"
)

// Bend is one angle class with the number of bends in it.
type Bend struct {
	Angle shape.Angle `json:"angle"`
	Count int         `json:"count"`
}

// FromShape groups a shape's bend-angle sequence into per-class counts,
// preserving first-seen class order.
func FromShape(def shape.Definition) []Bend {
	var bends []Bend
	for _, a := range def.BendAngles {
		found := false
		for i := range bends {
			if bends[i].Angle == a {
				bends[i].Count++
				found = true
				break
			}
		}
		if !found {
			bends = append(bends, Bend{Angle: a, Count: 1})
		}
	}
	return bends
}

// Override builds the bend list for a manual bend-count override. The
// override is a bare count, so it lands in the right-angle class.
func Override(count int) []Bend {
	if count <= 0 {
		return nil
	}
	return []Bend{{Angle: shape.Angle90, Count: count}}
}

// Total computes the length lost to bending: each angle class contributes
// count x multiplier(class) x diameter, independently.
func Total(bends []Bend, diameterMM float64, p profile.Params) float64 {
	var total float64
	for _, b := range bends {
		if b.Count <= 0 {
			continue
		}
		total += float64(b.Count) * p.MultiplierFor(b.Angle) * diameterMM
	}
	return total
}

// CountOf sums the bends across classes.
func CountOf(bends []Bend) int {
	n := 0
	for _, b := range bends {
		n += b.Count
	}
	return n
}
