// Package optimizer derives a recommended asset allocation from an
// investor's risk tolerance and desired return.
//
// The algorithm is a deterministic, closed-form adjustment of the baseline
// profile allocations, not a mean-variance solver: the baseline stocks and
// bonds weights are scaled linearly by how far the desired return sits from
// the profile's target return, clamped to hard floors/ceilings, and the
// result is renormalized to 100. It has been the advisor's recommendation
// formula from day one and its exact shape is load-bearing; see the notes on
// each step before changing anything.
package optimizer

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
)

// Clamp bounds for the adjusted weights, in percentage points.
const (
	minStocks = 20
	maxStocks = 90
	minBonds  = 10
	maxBonds  = 70
	minAlts   = 0
	maxAlts   = 20
)

// ProfileSource supplies the baseline risk profile for a tolerance.
// Implemented by the reference service.
type ProfileSource interface {
	Profile(tolerance domain.RiskTolerance) (domain.RiskProfile, error)
}

// Service computes optimized allocations.
type Service struct {
	profiles ProfileSource
	log      zerolog.Logger
}

// NewService creates a new optimizer service.
func NewService(profiles ProfileSource, log zerolog.Logger) *Service {
	return &Service{
		profiles: profiles,
		log:      log.With().Str("service", "optimizer").Logger(),
	}
}

// Optimize derives the recommended allocation for a tolerance and a desired
// annual return given in percent (the UI offers 3-15; anything finite is
// accepted here, the clamps absorb extreme adjustment factors).
//
// The four returned weights are whole percentages. Rounding means they may
// sum to 99 or 101; that drift is preserved deliberately, with no residual
// redistribution step.
func (s *Service) Optimize(tolerance domain.RiskTolerance, desiredReturnPct float64) (domain.Allocation, error) {
	profile, err := s.profiles.Profile(tolerance)
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("failed to resolve risk profile: %w", err)
	}

	// How far the desired return sits from the profile's target return.
	// factor 1.0 reproduces the baseline; above 1.0 shifts toward stocks.
	factor := (desiredReturnPct / 100) / profile.TargetReturn

	// Stocks scale up with the factor, bonds scale down mirrored around the
	// baseline (2 - factor). Alternatives keep their baseline weight on
	// purpose: they are a diversifier, not a return lever.
	stocks := clamp(profile.Baseline.Stocks*factor, minStocks, maxStocks)
	bonds := clamp(profile.Baseline.Bonds*(2-factor), minBonds, maxBonds)
	alternatives := clamp(profile.Baseline.Alternatives, minAlts, maxAlts)

	// Cash takes whatever the *unclamped* stocks/bonds candidates leave
	// uncovered. Using the pre-clamp values here is intentional: when a
	// clamp bites, the excess lands in cash and the renormalization below
	// spreads it back proportionally.
	unclampedSum := profile.Baseline.Stocks*factor +
		profile.Baseline.Bonds*(2-factor) +
		profile.Baseline.Alternatives
	cash := math.Max(0, 100-unclampedSum)

	sum := stocks + bonds + alternatives + cash
	scale := 100 / sum

	allocation := domain.Allocation{
		Stocks:       math.Round(stocks * scale),
		Bonds:        math.Round(bonds * scale),
		Alternatives: math.Round(alternatives * scale),
		Cash:         math.Round(cash * scale),
	}

	s.log.Debug().
		Str("tolerance", string(tolerance)).
		Float64("desired_return_pct", desiredReturnPct).
		Float64("factor", factor).
		Float64("total", allocation.Total()).
		Msg("Optimized allocation")

	return allocation, nil
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
