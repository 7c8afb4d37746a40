// Package rebalancing derives the per-asset-class moves that take an
// investor's current allocation to the optimized one.
package rebalancing

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
)

// Service derives rebalancing actions.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new rebalancing service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "rebalancing").Logger()}
}

// DeriveActions computes, for each of the four asset classes, the direction
// (increase, decrease or maintain) and the absolute percentage-point
// magnitude of the move from current to optimized. Total over the fixed
// asset class set; no rounding beyond what the allocations already carry.
func (s *Service) DeriveActions(current, optimized domain.Allocation) map[domain.AssetClass]domain.RebalanceAction {
	actions := make(map[domain.AssetClass]domain.RebalanceAction, len(domain.AssetClasses()))
	for _, class := range domain.AssetClasses() {
		delta := optimized.Get(class) - current.Get(class)

		direction := domain.DirectionMaintain
		if delta > 0 {
			direction = domain.DirectionIncrease
		} else if delta < 0 {
			direction = domain.DirectionDecrease
		}

		actions[class] = domain.RebalanceAction{
			Direction: direction,
			Magnitude: math.Abs(delta),
		}
	}
	return actions
}
