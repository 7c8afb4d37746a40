package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all advice routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/advice", func(r chi.Router) {
		r.Post("/", h.HandleBuildPlan)
		r.Get("/plans", h.HandleListPlans)
		r.Get("/plans/{id}", h.HandleGetPlan)
	})
}
