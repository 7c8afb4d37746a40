// Package domain contains the core value types of the advisor engine.
// The domain layer is pure: no infrastructure dependencies, no I/O.
// All values are created fresh per computation and never mutated in place.
package domain

import (
	"errors"
	"fmt"
	"math"
)

// AssetClass identifies one of the four investable asset classes.
// The set is fixed and closed; it is not extensible at runtime.
type AssetClass string

const (
	AssetStocks       AssetClass = "stocks"
	AssetBonds        AssetClass = "bonds"
	AssetAlternatives AssetClass = "alternatives"
	AssetCash         AssetClass = "cash"
)

// AssetClasses returns the four asset classes in canonical order.
// Iteration over allocations always uses this order so that derived
// slices (weights, per-class stats) line up index-for-index.
func AssetClasses() []AssetClass {
	return []AssetClass{AssetStocks, AssetBonds, AssetAlternatives, AssetCash}
}

// Sentinel errors for input validation.
var (
	ErrInvalidAllocation = errors.New("invalid allocation")
	ErrUnknownTolerance  = errors.New("unknown risk tolerance")
)

// allocationSumTolerance is the accepted drift around 100 for an
// allocation total. Optimizer rounding can legitimately produce 99 or 101.
const allocationSumTolerance = 1.5

// Allocation is a percentage split of investable funds across the four
// asset classes. Values are percentages (0-100), not fractions.
type Allocation struct {
	Stocks       float64 `json:"stocks"`
	Bonds        float64 `json:"bonds"`
	Alternatives float64 `json:"alternatives"`
	Cash         float64 `json:"cash"`
}

// Get returns the percentage allocated to the given asset class.
func (a Allocation) Get(class AssetClass) float64 {
	switch class {
	case AssetStocks:
		return a.Stocks
	case AssetBonds:
		return a.Bonds
	case AssetAlternatives:
		return a.Alternatives
	case AssetCash:
		return a.Cash
	}
	return 0
}

// Total returns the sum of the four percentages.
func (a Allocation) Total() float64 {
	return a.Stocks + a.Bonds + a.Alternatives + a.Cash
}

// Weights returns the allocation as fractional weights in canonical
// asset-class order (stocks, bonds, alternatives, cash).
func (a Allocation) Weights() []float64 {
	classes := AssetClasses()
	weights := make([]float64, len(classes))
	for i, class := range classes {
		weights[i] = a.Get(class) / 100.0
	}
	return weights
}

// Validate checks the allocation invariants: every weight non-negative and
// the total within tolerance of 100. Callers constructing allocations
// directly (bypassing the optimizer) must pass through here before any
// metrics are computed, so garbage fails fast instead of producing
// nonsensical numbers.
func (a Allocation) Validate() error {
	for _, class := range AssetClasses() {
		if a.Get(class) < 0 {
			return fmt.Errorf("%w: %s is negative (%.2f)", ErrInvalidAllocation, class, a.Get(class))
		}
	}
	if total := a.Total(); math.Abs(total-100) > allocationSumTolerance {
		return fmt.Errorf("%w: total is %.2f, expected ~100", ErrInvalidAllocation, total)
	}
	return nil
}

// RiskTolerance is the investor-selected risk category. It selects one of
// the three baseline risk profiles.
type RiskTolerance string

const (
	ToleranceLow    RiskTolerance = "low"
	ToleranceMedium RiskTolerance = "medium"
	ToleranceHigh   RiskTolerance = "high"
)

// ParseRiskTolerance validates and normalizes a tolerance string.
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch RiskTolerance(s) {
	case ToleranceLow, ToleranceMedium, ToleranceHigh:
		return RiskTolerance(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTolerance, s)
}

// RiskProfile is a named baseline allocation with its risk ceiling and
// target return (decimal fractions, 0.08 = 8%). Profiles are reference
// data: loaded once, never mutated by the engine.
type RiskProfile struct {
	Tolerance    RiskTolerance `json:"tolerance"`
	Baseline     Allocation    `json:"baseline"`
	MaxRisk      float64       `json:"max_risk"`
	TargetReturn float64       `json:"target_return"`
}

// AssetClassStats is the per-class (expected return, risk) pair used by the
// metrics calculator. Decimal fractions.
type AssetClassStats struct {
	ExpectedReturn float64 `json:"expected_return"`
	Risk           float64 `json:"risk"`
}

// PortfolioMetrics is the derived risk/return summary of an allocation.
// SharpeRatio is nil when risk is zero (an all-riskless book), where the
// ratio is undefined; it serializes as JSON null.
type PortfolioMetrics struct {
	ExpectedReturn float64  `json:"expected_return"`
	Risk           float64  `json:"risk"`
	SharpeRatio    *float64 `json:"sharpe_ratio"`
}

// ProjectionPoint is one year of the growth projection. Year 0 carries the
// initial amount with no growth applied. Values are whole currency units.
type ProjectionPoint struct {
	Year           int     `json:"year"`
	CurrentValue   float64 `json:"current_value"`
	OptimizedValue float64 `json:"optimized_value"`
}

// RebalanceDirection says which way an asset class should move.
type RebalanceDirection string

const (
	DirectionIncrease RebalanceDirection = "increase"
	DirectionDecrease RebalanceDirection = "decrease"
	DirectionMaintain RebalanceDirection = "maintain"
)

// RebalanceAction is the per-class move from a current allocation toward an
// optimized one. Magnitude is the absolute percentage-point delta.
type RebalanceAction struct {
	Direction RebalanceDirection `json:"direction"`
	Magnitude float64            `json:"magnitude"`
}
