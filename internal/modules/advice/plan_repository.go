package advice

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// PlanRepository persists advice plans in plans.db. The key request fields
// are stored as columns for listing; the full plan travels as a JSON
// payload so the stored record is exactly what the API returned.
type PlanRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// Schema for the plans table in plans.db.
const plansSchema = `
CREATE TABLE IF NOT EXISTS plans (
    id TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL,
    risk_tolerance TEXT NOT NULL,
    desired_return_pct REAL NOT NULL,
    horizon_years INTEGER NOT NULL,
    investment_amount REAL NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at);
`

// InitSchema ensures the plans table exists in plans.db
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(plansSchema)
	return err
}

// NewPlanRepository creates a new plan repository.
func NewPlanRepository(db *sql.DB, log zerolog.Logger) *PlanRepository {
	return &PlanRepository{
		db:  db,
		log: log.With().Str("repository", "plans").Logger(),
	}
}

// Save stores a plan.
func (r *PlanRepository) Save(plan *Plan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan %s: %w", plan.ID, err)
	}

	_, err = r.db.Exec(`
		INSERT INTO plans (id, created_at, risk_tolerance, desired_return_pct, horizon_years, investment_amount, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, plan.ID, plan.CreatedAt.Unix(),
		string(plan.Request.RiskTolerance), plan.Request.DesiredReturnPct,
		plan.Request.HorizonYears, plan.Request.InvestmentAmount, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save plan %s: %w", plan.ID, err)
	}
	return nil
}

// Get retrieves a plan by ID. Returns nil when no plan exists (not an error).
func (r *PlanRepository) Get(id string) (*Plan, error) {
	var payload string
	err := r.db.QueryRow(`SELECT payload FROM plans WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan %s: %w", id, err)
	}

	var plan Plan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan %s: %w", id, err)
	}
	return &plan, nil
}

// List retrieves the most recent plans, newest first.
func (r *PlanRepository) List(limit int) ([]*Plan, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`SELECT payload FROM plans ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*Plan, 0, limit)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		var plan Plan
		if err := json.Unmarshal([]byte(payload), &plan); err != nil {
			r.log.Warn().Err(err).Msg("Skipping unreadable plan payload")
			continue
		}
		plans = append(plans, &plan)
	}
	return plans, rows.Err()
}

// DeleteOlderThan removes plans created before the cutoff. Returns the
// number of plans removed.
func (r *PlanRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM plans WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old plans: %w", err)
	}
	return res.RowsAffected()
}
