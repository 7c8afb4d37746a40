package reference

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
)

// Service is the read surface the computation modules depend on. It serves
// reference data from the repository when one is wired, and from the shipped
// defaults otherwise (tests, or a degraded start without config.db).
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a reference service backed by config.db.
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "reference").Logger(),
	}
}

// NewStaticService creates a reference service that serves only the shipped
// defaults. Used by tests and as a no-database fallback.
func NewStaticService(log zerolog.Logger) *Service {
	return NewService(nil, log)
}

// Profile returns the risk profile for a tolerance.
func (s *Service) Profile(tolerance domain.RiskTolerance) (domain.RiskProfile, error) {
	if s.repo != nil {
		profile, err := s.repo.GetProfile(tolerance)
		if err == nil {
			return profile, nil
		}
		s.log.Warn().Err(err).Str("tolerance", string(tolerance)).Msg("Falling back to default risk profile")
	}
	profile, ok := DefaultProfiles()[tolerance]
	if !ok {
		return domain.RiskProfile{}, fmt.Errorf("%w: %q", domain.ErrUnknownTolerance, tolerance)
	}
	return profile, nil
}

// Profiles returns the full risk profile table.
func (s *Service) Profiles() map[domain.RiskTolerance]domain.RiskProfile {
	if s.repo != nil {
		profiles, err := s.repo.GetProfiles()
		if err == nil && len(profiles) > 0 {
			return profiles
		}
		if err != nil {
			s.log.Warn().Err(err).Msg("Falling back to default risk profiles")
		}
	}
	return DefaultProfiles()
}

// Stats returns the per-asset-class expected return and risk table.
// Every asset class is guaranteed a row: database rows are overlaid on the
// defaults, so a partially tuned table never loses a class.
func (s *Service) Stats() map[domain.AssetClass]domain.AssetClassStats {
	stats := DefaultStats()
	if s.repo != nil {
		stored, err := s.repo.GetStats()
		if err != nil {
			s.log.Warn().Err(err).Msg("Falling back to default asset class stats")
			return stats
		}
		for class, row := range stored {
			stats[class] = row
		}
	}
	return stats
}

// RiskFreeRate returns the configured Sharpe risk-free rate.
func (s *Service) RiskFreeRate() float64 {
	if s.repo != nil {
		rate, err := s.repo.GetRiskFreeRate()
		if err == nil {
			return rate
		}
		s.log.Warn().Err(err).Msg("Falling back to default risk-free rate")
	}
	return DefaultRiskFreeRate
}
