// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"
)

// BandHandler handles band rating and roster requests.
type BandHandler struct {
	deps Dependencies
}

// NewBandHandler creates a new band handler.
func NewBandHandler(deps Dependencies) *BandHandler {
	return &BandHandler{deps: deps}
}

// HandleBands dispatches GET /bands/{id}/rating and GET /bands/{id}/members.
func (h *BandHandler) HandleBands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/bands/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	bandID := parts[0]

	switch parts[1] {
	case "rating":
		h.handleRating(w, r, bandID)
	case "members":
		h.handleMembers(w, r, bandID)
	default:
		http.NotFound(w, r)
	}
}

type ratingResponse struct {
	BandID         string `json:"band_id"`
	ChemistryLevel int    `json:"chemistry_level"`
	Rating         int    `json:"rating"`
}

func (h *BandHandler) handleRating(w http.ResponseWriter, r *http.Request, bandID string) {
	chemistry := 0
	if v := r.URL.Query().Get("chemistry"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		chemistry = n
	}

	rating := h.deps.CalculateBandSkillRating(r.Context(), bandID, chemistry)
	writeJSON(w, http.StatusOK, ratingResponse{
		BandID:         bandID,
		ChemistryLevel: chemistry,
		Rating:         rating,
	})
}

func (h *BandHandler) handleMembers(w http.ResponseWriter, r *http.Request, bandID string) {
	members, err := h.deps.BandMembers(r.Context(), bandID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}
