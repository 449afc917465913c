// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SkillTreeHandler serves the static skill catalog tables for UI and
// validation layers that need the full graph.
type SkillTreeHandler struct {
	deps Dependencies
}

// NewSkillTreeHandler creates a new skill tree handler.
func NewSkillTreeHandler(deps Dependencies) *SkillTreeHandler {
	return &SkillTreeHandler{deps: deps}
}

// HandleDefinitions handles GET /skilltree/definitions requests.
func (h *SkillTreeHandler) HandleDefinitions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.SkillTree().Definitions)
}

// HandleRelationships handles GET /skilltree/relationships requests.
func (h *SkillTreeHandler) HandleRelationships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.SkillTree().Relationships)
}
