// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// BonusHandler handles the genre, recording, and rehearsal bonus endpoints.
type BonusHandler struct {
	deps Dependencies
}

// NewBonusHandler creates a new bonus handler.
func NewBonusHandler(deps Dependencies) *BonusHandler {
	return &BonusHandler{deps: deps}
}

// HandleGenre handles GET /bonus/genre?genre=&profile_id= requests; passing
// band_id instead of profile_id selects the band-wide variant.
func (h *BonusHandler) HandleGenre(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	genre := strings.TrimSpace(q.Get("genre"))
	profileID := strings.TrimSpace(q.Get("profile_id"))
	bandID := strings.TrimSpace(q.Get("band_id"))

	switch {
	case genre == "" || (profileID == "" && bandID == ""):
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
	case bandID != "":
		writeJSON(w, http.StatusOK, h.deps.CalculateBandGenreSkillBonus(r.Context(), bandID, genre))
	default:
		writeJSON(w, http.StatusOK, h.deps.CalculateGenreSkillBonus(r.Context(), profileID, genre))
	}
}

// HandleRecording handles GET /bonus/recording?profile_id= requests.
func (h *BonusHandler) HandleRecording(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	profileID := strings.TrimSpace(r.URL.Query().Get("profile_id"))
	if profileID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.CalculateRecordingSkillBonus(r.Context(), profileID))
}

// HandleRehearsal handles GET /bonus/rehearsal?profile_id=&roles=a,b requests.
func (h *BonusHandler) HandleRehearsal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	profileID := strings.TrimSpace(q.Get("profile_id"))
	if profileID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	var rehearsalRoles []string
	for _, role := range strings.Split(q.Get("roles"), ",") {
		if role = strings.TrimSpace(role); role != "" {
			rehearsalRoles = append(rehearsalRoles, role)
		}
	}
	writeJSON(w, http.StatusOK, h.deps.CalculateRehearsalEfficiency(r.Context(), profileID, rehearsalRoles))
}
