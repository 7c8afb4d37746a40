// Package projection builds the multi-year growth projection comparing an
// investor's current allocation against the optimized one.
package projection

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/pkg/formulas"
)

// Validation errors.
var (
	ErrNonPositiveAmount = errors.New("initial amount must be positive")
	ErrNegativeHorizon   = errors.New("horizon years must not be negative")
)

// Service materializes growth projection series.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new projection service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "projection").Logger()}
}

// Project compounds the initial amount annually at the two rates (decimal
// fractions) and returns one point per year from 0 to horizonYears
// inclusive. Year 0 is the initial amount with no growth applied. The whole
// series is materialized per call; recomputing with identical inputs yields
// an identical series.
func (s *Service) Project(initialAmount float64, horizonYears int, currentRate, optimizedRate float64) ([]domain.ProjectionPoint, error) {
	if initialAmount <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrNonPositiveAmount, initialAmount)
	}
	if horizonYears < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizonYears)
	}

	series := make([]domain.ProjectionPoint, 0, horizonYears+1)
	for year := 0; year <= horizonYears; year++ {
		series = append(series, domain.ProjectionPoint{
			Year:           year,
			CurrentValue:   formulas.CompoundValue(initialAmount, currentRate, year),
			OptimizedValue: formulas.CompoundValue(initialAmount, optimizedRate, year),
		})
	}
	return series, nil
}
