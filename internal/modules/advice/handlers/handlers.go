// Package handlers provides HTTP handlers for advice plan operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/advice"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/projection"
)

// Handler handles advice HTTP requests
type Handler struct {
	adviceService *advice.Service
	planRepo      *advice.PlanRepository
	log           zerolog.Logger
}

// NewHandler creates a new advice handler
func NewHandler(adviceService *advice.Service, planRepo *advice.PlanRepository, log zerolog.Logger) *Handler {
	return &Handler{
		adviceService: adviceService,
		planRepo:      planRepo,
		log:           log.With().Str("handler", "advice").Logger(),
	}
}

// adviceRequest is the wire form of an advice computation request.
type adviceRequest struct {
	RiskTolerance     string            `json:"risk_tolerance"`
	DesiredReturnPct  float64           `json:"desired_return_pct"`
	HorizonYears      int               `json:"horizon_years"`
	InvestmentAmount  float64           `json:"investment_amount"`
	CurrentAllocation domain.Allocation `json:"current_allocation"`
}

// HandleBuildPlan handles POST /api/advice
func (h *Handler) HandleBuildPlan(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	tolerance, err := domain.ParseRiskTolerance(req.RiskTolerance)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.adviceService.BuildPlan(advice.Request{
		RiskTolerance:     tolerance,
		DesiredReturnPct:  req.DesiredReturnPct,
		HorizonYears:      req.HorizonYears,
		InvestmentAmount:  req.InvestmentAmount,
		CurrentAllocation: req.CurrentAllocation,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidAllocation) ||
			errors.Is(err, domain.ErrUnknownTolerance) ||
			errors.Is(err, projection.ErrNonPositiveAmount) ||
			errors.Is(err, projection.ErrNegativeHorizon) {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, plan)
}

// HandleListPlans handles GET /api/advice/plans
func (h *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	plans, err := h.planRepo.List(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list plans")
		h.writeError(w, http.StatusInternalServerError, "failed to list plans")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"plans": plans})
}

// HandleGetPlan handles GET /api/advice/plans/{id}
func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	plan, err := h.planRepo.Get(id)
	if err != nil {
		h.log.Error().Err(err).Str("plan_id", id).Msg("Failed to get plan")
		h.writeError(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	if plan == nil {
		h.writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	h.writeJSON(w, http.StatusOK, plan)
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
