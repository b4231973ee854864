package aggregate

import (
	"encoding/json"
	"net/http"

	"Rebar/internal/calc/batch"
	"Rebar/internal/profile"
)

type Handler struct{}

type Request struct {
	Items    []batch.Item          `json:"items"`
	Config   profile.ProjectConfig `json:"config"`
	Profiles []profile.Profile     `json:"profiles,omitempty"`
}

type Response struct {
	Results []batch.ItemResult `json:"results"`
	Summary ProjectSummary     `json:"summary"`
}

// Lines converts batch results into aggregation lines. Failed bars keep a
// nil result and are skipped by the roll-up, not zeroed.
func Lines(results []batch.ItemResult) []Line {
	lines := make([]Line, 0, len(results))
	for _, r := range results {
		lines = append(lines, Line{Entry: r.Entry, Result: r.Result})
	}
	return lines
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	params := profile.Resolve(req.Config, req.Profiles...)
	results := batch.Calculate(req.Items, params)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Results: results,
		Summary: Project(Lines(results)),
	})
}
