package rebalancing

import (
	"testing"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/pkg/logger"
)

func TestDeriveActions(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Pretty: false})
	svc := NewService(log)

	current := domain.Allocation{Stocks: 60, Bonds: 30, Alternatives: 5, Cash: 5}
	optimized := domain.Allocation{Stocks: 70, Bonds: 20, Alternatives: 8, Cash: 2}

	actions := svc.DeriveActions(current, optimized)

	tests := []struct {
		class     domain.AssetClass
		direction domain.RebalanceDirection
		magnitude float64
	}{
		{domain.AssetStocks, domain.DirectionIncrease, 10},
		{domain.AssetBonds, domain.DirectionDecrease, 10},
		{domain.AssetAlternatives, domain.DirectionIncrease, 3},
		{domain.AssetCash, domain.DirectionDecrease, 3},
	}

	if len(actions) != 4 {
		t.Fatalf("Expected actions for all 4 asset classes, got %d", len(actions))
	}

	for _, tt := range tests {
		action, ok := actions[tt.class]
		if !ok {
			t.Errorf("Missing action for %s", tt.class)
			continue
		}
		if action.Direction != tt.direction {
			t.Errorf("%s: expected direction %s, got %s", tt.class, tt.direction, action.Direction)
		}
		if action.Magnitude != tt.magnitude {
			t.Errorf("%s: expected magnitude %.1f, got %.1f", tt.class, tt.magnitude, action.Magnitude)
		}
	}
}

func TestDeriveActions_IdenticalAllocations(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Pretty: false})
	svc := NewService(log)

	allocation := domain.Allocation{Stocks: 60, Bonds: 30, Alternatives: 8, Cash: 2}
	actions := svc.DeriveActions(allocation, allocation)

	for class, action := range actions {
		if action.Direction != domain.DirectionMaintain {
			t.Errorf("%s: expected maintain, got %s", class, action.Direction)
		}
		if action.Magnitude != 0 {
			t.Errorf("%s: expected magnitude 0, got %.1f", class, action.Magnitude)
		}
	}
}

func TestDeriveActions_MagnitudeNeverNegative(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Pretty: false})
	svc := NewService(log)

	current := domain.Allocation{Stocks: 90, Bonds: 10, Alternatives: 0, Cash: 0}
	optimized := domain.Allocation{Stocks: 20, Bonds: 60, Alternatives: 15, Cash: 5}

	for class, action := range svc.DeriveActions(current, optimized) {
		if action.Magnitude < 0 {
			t.Errorf("%s: negative magnitude %.1f", class, action.Magnitude)
		}
	}
}
