// Package metrics computes the risk/return summary of an allocation:
// expected annual return, blended volatility and Sharpe ratio.
package metrics

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/pkg/formulas"
)

// StatsSource supplies the per-asset-class return/risk table and the
// risk-free rate. Implemented by the reference service.
type StatsSource interface {
	Stats() map[domain.AssetClass]domain.AssetClassStats
	RiskFreeRate() float64
}

// Service computes portfolio metrics.
type Service struct {
	stats StatsSource
	log   zerolog.Logger
}

// NewService creates a new metrics service.
func NewService(stats StatsSource, log zerolog.Logger) *Service {
	return &Service{
		stats: stats,
		log:   log.With().Str("service", "metrics").Logger(),
	}
}

// Compute derives the metrics of an allocation. The allocation is validated
// first so that a caller-constructed allocation with negative weights or a
// total far from 100 fails fast instead of producing nonsense.
//
// Risk uses the advisor's blended formula (root of summed squared weighted
// risks, no covariance terms); see formulas.BlendedRisk. SharpeRatio is nil
// for a zero-risk allocation.
func (s *Service) Compute(allocation domain.Allocation) (domain.PortfolioMetrics, error) {
	if err := allocation.Validate(); err != nil {
		return domain.PortfolioMetrics{}, fmt.Errorf("cannot compute metrics: %w", err)
	}

	stats := s.stats.Stats()
	classes := domain.AssetClasses()
	returns := make([]float64, len(classes))
	risks := make([]float64, len(classes))
	for i, class := range classes {
		returns[i] = stats[class].ExpectedReturn
		risks[i] = stats[class].Risk
	}

	weights := allocation.Weights()
	expectedReturn := formulas.WeightedReturn(weights, returns)
	risk := formulas.BlendedRisk(weights, risks)

	return domain.PortfolioMetrics{
		ExpectedReturn: expectedReturn,
		Risk:           risk,
		SharpeRatio:    formulas.SharpeRatio(expectedReturn, s.stats.RiskFreeRate(), risk),
	}, nil
}
