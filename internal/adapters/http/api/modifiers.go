// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// ModifiersHandler handles performance modifier requests.
type ModifiersHandler struct {
	deps Dependencies
}

// NewModifiersHandler creates a new modifiers handler.
func NewModifiersHandler(deps Dependencies) *ModifiersHandler {
	return &ModifiersHandler{deps: deps}
}

// HandleGetModifiers handles GET /modifiers?profile_id=&role= requests.
func (h *ModifiersHandler) HandleGetModifiers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_modifiers"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	profileID := strings.TrimSpace(r.URL.Query().Get("profile_id"))
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	if profileID == "" || role == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	m := h.deps.CalculatePerformanceModifiers(r.Context(), profileID, role)
	writeJSON(w, http.StatusOK, m)
}
