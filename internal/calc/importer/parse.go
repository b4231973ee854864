package importer

import (
	"fmt"

	"Rebar/internal/calc/bar"
	"Rebar/internal/shape"
)

// Expected row layout, one bar per row:
// component, shape, diameter_mm, spacing_mm, span_mm, cover_mm,
// a, b, c, d, e, f, lap. Segment columns are optional.
var dimensionColumns = []string{"a", "b", "c", "d", "e", "f", "lap"}

// ParseRow converts one sheet row into a bar entry. The shape column
// accepts either a catalog shape id or a component bar type; an
// unrecognized tag still parses and fails per bar at calculation time.
func ParseRow(row []string) (bar.Entry, error) {
	if len(row) < 3 {
		return bar.Entry{}, fmt.Errorf("bad row")
	}
	diameter, err := toFloat(row[2])
	if err != nil {
		return bar.Entry{}, err
	}
	e := bar.Entry{
		Component:  row[0],
		DiameterMM: diameter,
		Dimensions: map[string]float64{},
	}

	if _, lookupErr := shape.LookupBarType(shape.BarType(row[1])); lookupErr == nil {
		e.BarType = shape.BarType(row[1])
	} else {
		e.Shape = shape.ID(row[1])
	}

	if len(row) > 3 && row[3] != "" {
		e.SpacingMM, _ = toFloat(row[3])
	}
	if len(row) > 4 && row[4] != "" {
		e.SpanMM, _ = toFloat(row[4])
	}
	if len(row) > 5 && row[5] != "" {
		e.CoverMM, _ = toFloat(row[5])
	}
	for i, slot := range dimensionColumns {
		col := 6 + i
		if len(row) > col && row[col] != "" {
			if v, err := toFloat(row[col]); err == nil {
				e.Dimensions[slot] = v
			}
		}
	}
	return e, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
