package advice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/metrics"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/optimizer"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/projection"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/rebalancing"
)

// Service runs the full advice pipeline. The numeric pipeline is pure; the
// only side effect is persisting the finished plan, and the repository is
// optional so the engine also runs storage-free.
type Service struct {
	optimizer   *optimizer.Service
	metrics     *metrics.Service
	projection  *projection.Service
	rebalancing *rebalancing.Service
	planRepo    *PlanRepository // optional
	log         zerolog.Logger
}

// NewService creates a new advice service. planRepo may be nil, in which
// case plans are computed but not persisted.
func NewService(
	optimizerSvc *optimizer.Service,
	metricsSvc *metrics.Service,
	projectionSvc *projection.Service,
	rebalancingSvc *rebalancing.Service,
	planRepo *PlanRepository,
	log zerolog.Logger,
) *Service {
	return &Service{
		optimizer:   optimizerSvc,
		metrics:     metricsSvc,
		projection:  projectionSvc,
		rebalancing: rebalancingSvc,
		planRepo:    planRepo,
		log:         log.With().Str("service", "advice").Logger(),
	}
}

// BuildPlan validates the request, runs the four computations and returns
// the assembled plan. Identical inputs always produce identical numbers;
// only the plan ID and timestamp differ between calls.
func (s *Service) BuildPlan(req Request) (*Plan, error) {
	if err := req.CurrentAllocation.Validate(); err != nil {
		return nil, fmt.Errorf("current allocation: %w", err)
	}

	optimized, err := s.optimizer.Optimize(req.RiskTolerance, req.DesiredReturnPct)
	if err != nil {
		return nil, err
	}

	currentMetrics, err := s.metrics.Compute(req.CurrentAllocation)
	if err != nil {
		return nil, fmt.Errorf("current allocation metrics: %w", err)
	}
	optimizedMetrics, err := s.metrics.Compute(optimized)
	if err != nil {
		return nil, fmt.Errorf("optimized allocation metrics: %w", err)
	}

	series, err := s.projection.Project(
		req.InvestmentAmount, req.HorizonYears,
		currentMetrics.ExpectedReturn, optimizedMetrics.ExpectedReturn)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		ID:                  uuid.NewString(),
		CreatedAt:           time.Now().UTC(),
		Request:             req,
		OptimizedAllocation: optimized,
		CurrentMetrics:      currentMetrics,
		OptimizedMetrics:    optimizedMetrics,
		Actions:             s.rebalancing.DeriveActions(req.CurrentAllocation, optimized),
		Projection:          series,
	}

	if s.planRepo != nil {
		if err := s.planRepo.Save(plan); err != nil {
			// The computation succeeded; losing history is not worth a 500.
			s.log.Error().Err(err).Str("plan_id", plan.ID).Msg("Failed to persist advice plan")
		}
	}

	s.log.Info().
		Str("plan_id", plan.ID).
		Str("tolerance", string(req.RiskTolerance)).
		Float64("desired_return_pct", req.DesiredReturnPct).
		Int("horizon_years", req.HorizonYears).
		Msg("Advice plan built")

	return plan, nil
}
