package batch

import (
	"Rebar/internal/calc/bar"
	"Rebar/internal/calc/confidence"
	"Rebar/internal/calc/measure"
	"Rebar/internal/profile"
)

// Item is one bar to calculate, with optional component geometry for
// auto-derived measurements.
type Item struct {
	Entry    bar.Entry         `json:"entry"`
	Geometry *measure.Geometry `json:"geometry,omitempty"`
}

// ItemResult carries either a result or the per-item error text. A failed
// bar never aborts the rest of the batch.
type ItemResult struct {
	Entry      bar.Entry          `json:"entry"`
	Result     *bar.Result        `json:"result,omitempty"`
	Confidence *confidence.Result `json:"confidence,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Calculate runs the pipeline over every item independently.
func Calculate(items []Item, p profile.Params) []ItemResult {
	out := make([]ItemResult, 0, len(items))
	for _, item := range items {
		ir := ItemResult{Entry: item.Entry}
		res, err := bar.Calculate(item.Entry, item.Geometry, p)
		if err != nil {
			ir.Error = err.Error()
			out = append(out, ir)
			continue
		}
		conf := confidence.Score(item.Entry, item.Geometry, p)
		ir.Result = &res
		ir.Confidence = &conf
		out = append(out, ir)
	}
	return out
}
