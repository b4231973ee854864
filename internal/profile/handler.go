package profile

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

// List serves the built-in standard profiles.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Standards)
}

type ResolveRequest struct {
	Config   ProjectConfig `json:"config"`
	Profiles []Profile     `json:"profiles,omitempty"`
}

// Resolve shows the effective parameters a config binds to, so a client
// can display exactly what the engine will use.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Resolve(req.Config, req.Profiles...))
}
