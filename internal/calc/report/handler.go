package report

import (
	"encoding/json"
	"net/http"

	"Rebar/internal/calc/aggregate"
	"Rebar/internal/calc/batch"
	"Rebar/internal/profile"
)

type Handler struct{}

type Request struct {
	Meta     Meta                  `json:"meta"`
	Items    []batch.Item          `json:"items"`
	Config   profile.ProjectConfig `json:"config"`
	Profiles []profile.Profile     `json:"profiles,omitempty"`
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	params := profile.Resolve(req.Config, req.Profiles...)
	results := batch.Calculate(req.Items, params)
	summary := aggregate.Project(aggregate.Lines(results))

	pdf := Build(req.Meta, results, summary)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"schedule.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
