package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all reference data routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reference", func(r chi.Router) {
		r.Get("/profiles", h.HandleGetProfiles)
		r.Get("/asset-stats", h.HandleGetAssetStats)
		r.Get("/risk-free-rate", h.HandleGetRiskFreeRate)
		r.Put("/risk-free-rate", h.HandleSetRiskFreeRate)
	})
}
