package export

import (
	"encoding/json"
	"net/http"

	"Rebar/internal/calc/aggregate"
	"Rebar/internal/calc/batch"
	"Rebar/internal/profile"
)

type Handler struct{}

type Request struct {
	Items    []batch.Item          `json:"items"`
	Config   profile.ProjectConfig `json:"config"`
	Profiles []profile.Profile     `json:"profiles,omitempty"`
}

func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	params := profile.Resolve(req.Config, req.Profiles...)
	results := batch.Calculate(req.Items, params)
	summary := aggregate.Project(aggregate.Lines(results))

	f, err := Workbook(results, summary)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"schedule.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
