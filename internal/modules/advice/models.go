// Package advice orchestrates the advisor engine: one request runs the
// optimizer, the metrics calculator, the growth projector and the
// rebalancing advisor, and the combined result is stored as an advice plan.
package advice

import (
	"time"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
)

// Request carries the investor inputs for one advice computation.
type Request struct {
	RiskTolerance     domain.RiskTolerance `json:"risk_tolerance"`
	DesiredReturnPct  float64              `json:"desired_return_pct"`
	HorizonYears      int                  `json:"horizon_years"`
	InvestmentAmount  float64              `json:"investment_amount"`
	CurrentAllocation domain.Allocation    `json:"current_allocation"`
}

// Plan is the full advice output for one request: the recommended
// allocation, comparative metrics, the per-class rebalancing moves and the
// year-by-year growth projection. Plans are immutable once built.
type Plan struct {
	ID                  string                                       `json:"id"`
	CreatedAt           time.Time                                    `json:"created_at"`
	Request             Request                                      `json:"request"`
	OptimizedAllocation domain.Allocation                            `json:"optimized_allocation"`
	CurrentMetrics      domain.PortfolioMetrics                      `json:"current_metrics"`
	OptimizedMetrics    domain.PortfolioMetrics                      `json:"optimized_metrics"`
	Actions             map[domain.AssetClass]domain.RebalanceAction `json:"actions"`
	Projection          []domain.ProjectionPoint                     `json:"projection"`
}
