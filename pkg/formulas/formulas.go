// Package formulas provides the pure portfolio math used by the advisor
// engine: weighted expected return, blended volatility, Sharpe ratio and
// compound growth. All rates are decimal fractions (0.08 = 8%).
package formulas

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WeightedReturn calculates the expected portfolio return as the
// weight-averaged sum of per-asset expected returns.
//
// Args:
//
//	weights: Portfolio weights (fractions summing to ~1.0)
//	returns: Per-asset expected annual returns, same order as weights
//
// Returns:
//
//	Expected annual portfolio return
func WeightedReturn(weights, returns []float64) float64 {
	if len(weights) == 0 || len(weights) != len(returns) {
		return 0
	}
	return floats.Dot(weights, returns)
}

// BlendedRisk calculates portfolio volatility as the root of the sum of
// squared weighted per-asset risks:
//
//	risk = sqrt( Σ (w_i * σ_i)² )
//
// This deliberately ignores cross-asset covariance. It is the risk figure
// the advisor has always reported, and downstream numbers (Sharpe, the
// profile maxRisk ceilings) are calibrated against it, so it must not be
// replaced with a full covariance treatment.
func BlendedRisk(weights, risks []float64) float64 {
	if len(weights) == 0 || len(weights) != len(risks) {
		return 0
	}
	var sum float64
	for i, w := range weights {
		wr := w * risks[i]
		sum += wr * wr
	}
	return math.Sqrt(sum)
}

// SharpeRatio calculates the risk-adjusted return measure
//
//	Sharpe = (expected return - risk-free rate) / risk
//
// Returns nil when risk is zero, where the ratio is undefined. Callers must
// treat nil as "not computable", never as zero.
func SharpeRatio(expectedReturn, riskFreeRate, risk float64) *float64 {
	if risk == 0 {
		return nil
	}
	sharpe := (expectedReturn - riskFreeRate) / risk
	return &sharpe
}

// CompoundValue calculates the value of an amount after n full years of
// annual compounding at the given rate, rounded to the nearest whole
// currency unit. No intra-year contributions, fees or inflation.
func CompoundValue(amount, annualRate float64, years int) float64 {
	return math.Round(amount * math.Pow(1+annualRate, float64(years)))
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}
