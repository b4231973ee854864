package batch

import (
	"encoding/json"
	"net/http"

	"Rebar/internal/profile"
)

type Handler struct{}

type Request struct {
	Items    []Item                `json:"items"`
	Config   profile.ProjectConfig `json:"config"`
	Profiles []profile.Profile     `json:"profiles,omitempty"`
}

type Response struct {
	Count   int          `json:"count"`
	Results []ItemResult `json:"results"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}
	params := profile.Resolve(req.Config, req.Profiles...)
	results := Calculate(req.Items, params)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Count: len(results), Results: results})
}
