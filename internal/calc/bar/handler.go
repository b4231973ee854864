package bar

import (
	"encoding/json"
	"net/http"

	"Rebar/internal/calc/measure"
	"Rebar/internal/profile"
)

type Handler struct{}

type Request struct {
	Entry    Entry                 `json:"entry"`
	Geometry *measure.Geometry     `json:"geometry,omitempty"`
	Config   profile.ProjectConfig `json:"config"`
	Profiles []profile.Profile     `json:"profiles,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	params := profile.Resolve(req.Config, req.Profiles...)
	res, err := Calculate(req.Entry, req.Geometry, params)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
