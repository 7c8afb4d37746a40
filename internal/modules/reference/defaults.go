package reference

import "github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"

// DefaultRiskFreeRate is the risk-free rate used for Sharpe ratios unless
// overridden in the settings table.
const DefaultRiskFreeRate = 0.02

// DefaultProfiles returns the built-in risk profile table. These values
// seed config.db on first start and serve as the fallback when the
// database is unavailable.
func DefaultProfiles() map[domain.RiskTolerance]domain.RiskProfile {
	return map[domain.RiskTolerance]domain.RiskProfile{
		domain.ToleranceLow: {
			Tolerance:    domain.ToleranceLow,
			Baseline:     domain.Allocation{Stocks: 30, Bonds: 60, Alternatives: 5, Cash: 5},
			MaxRisk:      0.08,
			TargetReturn: 0.05,
		},
		domain.ToleranceMedium: {
			Tolerance:    domain.ToleranceMedium,
			Baseline:     domain.Allocation{Stocks: 60, Bonds: 30, Alternatives: 8, Cash: 2},
			MaxRisk:      0.12,
			TargetReturn: 0.08,
		},
		domain.ToleranceHigh: {
			Tolerance:    domain.ToleranceHigh,
			Baseline:     domain.Allocation{Stocks: 80, Bonds: 15, Alternatives: 5, Cash: 0},
			MaxRisk:      0.18,
			TargetReturn: 0.12,
		},
	}
}

// DefaultStats returns the built-in per-asset-class expected return and
// risk table (decimal fractions).
func DefaultStats() map[domain.AssetClass]domain.AssetClassStats {
	return map[domain.AssetClass]domain.AssetClassStats{
		domain.AssetStocks:       {ExpectedReturn: 0.10, Risk: 0.16},
		domain.AssetBonds:        {ExpectedReturn: 0.04, Risk: 0.04},
		domain.AssetAlternatives: {ExpectedReturn: 0.07, Risk: 0.12},
		domain.AssetCash:         {ExpectedReturn: 0.02, Risk: 0.01},
	}
}
