// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veloria/encore/internal/adapters/repository"
	"github.com/veloria/encore/internal/domain/band"
	"github.com/veloria/encore/internal/domain/bonus"
	"github.com/veloria/encore/internal/domain/gear"
	"github.com/veloria/encore/internal/domain/modifiers"
	"github.com/veloria/encore/internal/domain/skilltree"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	SkillTree() *skilltree.Catalog

	CalculatePerformanceModifiers(ctx context.Context, profileID, role string) modifiers.Modifiers
	CalculateBandSkillRating(ctx context.Context, bandID string, chemistryLevel int) int
	CalculateGenreSkillBonus(ctx context.Context, profileID, genre string) bonus.GenreResult
	CalculateBandGenreSkillBonus(ctx context.Context, bandID, genre string) bonus.GenreResult
	CalculateRecordingSkillBonus(ctx context.Context, profileID string) bonus.RecordingResult
	CalculateRehearsalEfficiency(ctx context.Context, profileID string, rehearsalRoles []string) bonus.RehearsalResult

	CreateProfile(ctx context.Context, userID string) (string, error)
	SetSkillLevel(ctx context.Context, profileID, slug string, level int) error
	AddGearItem(ctx context.Context, profileID string, item gear.Item, equipped bool) error
	AddBandMember(ctx context.Context, bandID string, m band.Member) (string, error)
	BandMembers(ctx context.Context, bandID string) ([]band.Member, error)
}

// StatsProvider exposes service statistics for the monitoring endpoint.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	skillTreeHandler *SkillTreeHandler
	modifiersHandler *ModifiersHandler
	bandHandler      *BandHandler
	bonusHandler     *BonusHandler
	writeHandler     *WriteHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		skillTreeHandler: NewSkillTreeHandler(deps),
		modifiersHandler: NewModifiersHandler(deps),
		bandHandler:      NewBandHandler(deps),
		bonusHandler:     NewBonusHandler(deps),
		writeHandler:     NewWriteHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/skilltree/definitions", MetricsMiddleware(s.skillTreeHandler.HandleDefinitions, "skilltree_definitions"))
	mux.HandleFunc("/skilltree/relationships", MetricsMiddleware(s.skillTreeHandler.HandleRelationships, "skilltree_relationships"))
	mux.HandleFunc("/modifiers", MetricsMiddleware(s.modifiersHandler.HandleGetModifiers, "modifiers"))
	mux.HandleFunc("/bands/", MetricsMiddleware(s.bandHandler.HandleBands, "bands"))
	mux.HandleFunc("/bands", MetricsMiddleware(s.writeHandler.HandlePostBand, "bands_write"))
	mux.HandleFunc("/bonus/genre", MetricsMiddleware(s.bonusHandler.HandleGenre, "bonus_genre"))
	mux.HandleFunc("/bonus/recording", MetricsMiddleware(s.bonusHandler.HandleRecording, "bonus_recording"))
	mux.HandleFunc("/bonus/rehearsal", MetricsMiddleware(s.bonusHandler.HandleRehearsal, "bonus_rehearsal"))
	mux.HandleFunc("/profiles", MetricsMiddleware(s.writeHandler.HandlePostProfile, "profiles"))
	mux.HandleFunc("/progress", MetricsMiddleware(s.writeHandler.HandlePostProgress, "progress"))
	mux.HandleFunc("/inventory", MetricsMiddleware(s.writeHandler.HandlePostInventory, "inventory"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
