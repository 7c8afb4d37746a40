// Package handlers provides HTTP handlers for reference data management.
package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/reference"
)

// Handler handles reference data HTTP requests
type Handler struct {
	service *reference.Service
	repo    *reference.Repository
	log     zerolog.Logger
}

// NewHandler creates a new reference data handler
func NewHandler(service *reference.Service, repo *reference.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
		log:     log.With().Str("handler", "reference").Logger(),
	}
}

// HandleGetProfiles handles GET /api/reference/profiles
func (h *Handler) HandleGetProfiles(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": h.service.Profiles()})
}

// HandleGetAssetStats handles GET /api/reference/asset-stats
func (h *Handler) HandleGetAssetStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"asset_stats": h.service.Stats()})
}

// HandleGetRiskFreeRate handles GET /api/reference/risk-free-rate
func (h *Handler) HandleGetRiskFreeRate(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]float64{"risk_free_rate": h.service.RiskFreeRate()})
}

// HandleSetRiskFreeRate handles PUT /api/reference/risk-free-rate
func (h *Handler) HandleSetRiskFreeRate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RiskFreeRate float64 `json:"risk_free_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if math.IsNaN(body.RiskFreeRate) || math.IsInf(body.RiskFreeRate, 0) || body.RiskFreeRate < 0 {
		h.writeError(w, http.StatusBadRequest, "risk_free_rate must be a non-negative finite number")
		return
	}

	if err := h.repo.SetRiskFreeRate(body.RiskFreeRate); err != nil {
		h.log.Error().Err(err).Msg("Failed to set risk-free rate")
		h.writeError(w, http.StatusInternalServerError, "failed to set risk-free rate")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]float64{"risk_free_rate": body.RiskFreeRate})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
