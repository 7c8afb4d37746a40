package projection

import (
	"errors"
	"testing"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/pkg/logger"
)

func newTestService() *Service {
	return NewService(logger.New(logger.Config{Level: "error", Pretty: false}))
}

func TestProject_TwoYearsAtTenPercent(t *testing.T) {
	svc := newTestService()

	series, err := svc.Project(100000, 2, 0.10, 0.10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []domain.ProjectionPoint{
		{Year: 0, CurrentValue: 100000, OptimizedValue: 100000},
		{Year: 1, CurrentValue: 110000, OptimizedValue: 110000},
		{Year: 2, CurrentValue: 121000, OptimizedValue: 121000},
	}

	if len(series) != len(expected) {
		t.Fatalf("Expected %d points, got %d", len(expected), len(series))
	}
	for i, point := range expected {
		if series[i] != point {
			t.Errorf("Point %d: expected %+v, got %+v", i, point, series[i])
		}
	}
}

func TestProject_DivergingRates(t *testing.T) {
	svc := newTestService()

	series, err := svc.Project(50000, 3, 0.04, 0.08)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Year 0 carries the principal for both columns
	if series[0].CurrentValue != 50000 || series[0].OptimizedValue != 50000 {
		t.Errorf("Year 0 must be the principal, got %+v", series[0])
	}

	// 50000 * 1.08^3 = 62985.6 -> 62986; 50000 * 1.04^3 = 56243.2 -> 56243
	last := series[3]
	if last.CurrentValue != 56243 {
		t.Errorf("Expected current value 56243, got %.0f", last.CurrentValue)
	}
	if last.OptimizedValue != 62986 {
		t.Errorf("Expected optimized value 62986, got %.0f", last.OptimizedValue)
	}
}

func TestProject_ZeroHorizon(t *testing.T) {
	svc := newTestService()

	series, err := svc.Project(1000, 0, 0.05, 0.07)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("Expected exactly one point for horizon 0, got %d", len(series))
	}
	if series[0].Year != 0 || series[0].CurrentValue != 1000 {
		t.Errorf("Unexpected point: %+v", series[0])
	}
}

func TestProject_InvalidInputs(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		amount   float64
		years    int
		expected error
	}{
		{name: "zero amount", amount: 0, years: 5, expected: ErrNonPositiveAmount},
		{name: "negative amount", amount: -100, years: 5, expected: ErrNonPositiveAmount},
		{name: "negative horizon", amount: 1000, years: -1, expected: ErrNegativeHorizon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Project(tt.amount, tt.years, 0.05, 0.07)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestProject_Recomputable(t *testing.T) {
	svc := newTestService()

	first, err := svc.Project(25000, 10, 0.06, 0.09)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := svc.Project(25000, 10, 0.06, 0.09)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(first) != 11 || len(second) != 11 {
		t.Fatalf("Expected 11 points, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Point %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
