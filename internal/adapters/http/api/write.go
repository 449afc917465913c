// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/veloria/encore/internal/domain/band"
	"github.com/veloria/encore/internal/domain/curve"
	"github.com/veloria/encore/internal/domain/gear"
)

// WriteHandler hosts the minimal write surface: profiles, progress,
// inventory, and roster records feeding the read endpoints.
type WriteHandler struct {
	deps Dependencies
}

// NewWriteHandler creates a new write handler.
func NewWriteHandler(deps Dependencies) *WriteHandler {
	return &WriteHandler{deps: deps}
}

type profileRequest struct {
	UserID string `json:"user_id"`
}

func (p profileRequest) validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return errors.New("missing user_id")
	}
	return nil
}

// HandlePostProfile handles POST /profiles requests.
func (h *WriteHandler) HandlePostProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	profileID, err := h.deps.CreateProfile(r.Context(), req.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"profile_id": profileID})
}

type progressRequest struct {
	ProfileID string `json:"profile_id"`
	SkillSlug string `json:"skill_slug"`
	Level     int    `json:"current_level"`
}

func (p progressRequest) validate() error {
	switch {
	case strings.TrimSpace(p.ProfileID) == "":
		return errors.New("missing profile_id")
	case strings.TrimSpace(p.SkillSlug) == "":
		return errors.New("missing skill_slug")
	case p.Level < 0 || p.Level > curve.MaxLevel:
		return errors.New("current_level out of range")
	}
	return nil
}

// HandlePostProgress handles POST /progress requests.
func (h *WriteHandler) HandlePostProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	if err := h.deps.SetSkillLevel(r.Context(), req.ProfileID, req.SkillSlug, req.Level); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type inventoryRequest struct {
	ProfileID string    `json:"profile_id"`
	Item      gear.Item `json:"item"`
	Equipped  bool      `json:"equipped"`
}

func (p inventoryRequest) validate() error {
	switch {
	case strings.TrimSpace(p.ProfileID) == "":
		return errors.New("missing profile_id")
	case strings.TrimSpace(p.Item.Category) == "":
		return errors.New("missing item category")
	case p.Item.Rarity == "":
		return errors.New("missing item rarity")
	}
	return nil
}

// HandlePostInventory handles POST /inventory requests.
func (h *WriteHandler) HandlePostInventory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	if err := h.deps.AddGearItem(r.Context(), req.ProfileID, req.Item, req.Equipped); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

type memberRequest struct {
	BandID      string `json:"band_id"`
	ProfileID   string `json:"profile_id"`
	Role        string `json:"instrument_role"`
	Touring     bool   `json:"is_touring_member"`
	TouringTier int    `json:"touring_member_tier"`
}

func (p memberRequest) validate() error {
	switch {
	case strings.TrimSpace(p.BandID) == "":
		return errors.New("missing band_id")
	case strings.TrimSpace(p.Role) == "":
		return errors.New("missing instrument_role")
	case !p.Touring && strings.TrimSpace(p.ProfileID) == "":
		return errors.New("missing profile_id for player member")
	case p.Touring && (p.TouringTier < 1 || p.TouringTier > 5):
		return errors.New("touring_member_tier out of range")
	}
	return nil
}

// HandlePostBand handles POST /bands requests, appending one member.
func (h *WriteHandler) HandlePostBand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	memberID, err := h.deps.AddBandMember(r.Context(), req.BandID, band.Member{
		ProfileID:   req.ProfileID,
		Role:        req.Role,
		Touring:     req.Touring,
		TouringTier: req.TouringTier,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"member_id": memberID})
}
