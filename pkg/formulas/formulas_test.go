package formulas

import (
	"math"
	"testing"
)

func TestWeightedReturn(t *testing.T) {
	tests := []struct {
		name     string
		weights  []float64
		returns  []float64
		expected float64
	}{
		{
			name:     "single asset",
			weights:  []float64{1.0},
			returns:  []float64{0.10},
			expected: 0.10,
		},
		{
			name:     "blended book",
			weights:  []float64{0.6, 0.3, 0.08, 0.02},
			returns:  []float64{0.10, 0.04, 0.07, 0.02},
			expected: 0.078,
		},
		{
			name:     "empty input",
			weights:  nil,
			returns:  nil,
			expected: 0,
		},
		{
			name:     "length mismatch",
			weights:  []float64{0.5, 0.5},
			returns:  []float64{0.10},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WeightedReturn(tt.weights, tt.returns)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("Expected %.6f, got %.6f", tt.expected, result)
			}
		})
	}
}

func TestBlendedRisk(t *testing.T) {
	// Single fully weighted asset: risk passes straight through
	if got := BlendedRisk([]float64{1.0}, []float64{0.16}); math.Abs(got-0.16) > 1e-12 {
		t.Errorf("Expected 0.16, got %.6f", got)
	}

	// Two assets: sqrt((0.5*0.16)^2 + (0.5*0.04)^2)
	expected := math.Sqrt(0.08*0.08 + 0.02*0.02)
	if got := BlendedRisk([]float64{0.5, 0.5}, []float64{0.16, 0.04}); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected %.6f, got %.6f", expected, got)
	}

	if got := BlendedRisk(nil, nil); got != 0 {
		t.Errorf("Expected 0 for empty input, got %.6f", got)
	}
}

func TestSharpeRatio(t *testing.T) {
	sharpe := SharpeRatio(0.10, 0.02, 0.16)
	if sharpe == nil {
		t.Fatal("Expected a ratio, got nil")
	}
	if math.Abs(*sharpe-0.5) > 1e-12 {
		t.Errorf("Expected 0.5, got %.6f", *sharpe)
	}

	// Return below the risk-free rate: negative, still defined
	negative := SharpeRatio(0.01, 0.02, 0.10)
	if negative == nil || *negative >= 0 {
		t.Errorf("Expected a negative ratio, got %v", negative)
	}

	// Zero risk: undefined, never NaN or Inf
	if got := SharpeRatio(0.10, 0.02, 0); got != nil {
		t.Errorf("Expected nil for zero risk, got %.6f", *got)
	}
}

func TestCompoundValue(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		rate     float64
		years    int
		expected float64
	}{
		{name: "year zero is the principal", amount: 100000, rate: 0.10, years: 0, expected: 100000},
		{name: "one year at 10%", amount: 100000, rate: 0.10, years: 1, expected: 110000},
		{name: "two years compound", amount: 100000, rate: 0.10, years: 2, expected: 121000},
		{name: "rounds to whole units", amount: 1000, rate: 0.033, years: 1, expected: 1033},
		{name: "zero rate stays flat", amount: 5000, rate: 0, years: 10, expected: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompoundValue(tt.amount, tt.rate, tt.years)
			if result != tt.expected {
				t.Errorf("Expected %.0f, got %.0f", tt.expected, result)
			}
		})
	}
}
