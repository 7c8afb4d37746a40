// Package reference manages the engine's tunable reference data: the three
// baseline risk profiles, the per-asset-class return/risk table, and the
// risk-free rate. Values live in config.db and take precedence over the
// shipped defaults, which allows tuning without a rebuild.
package reference

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/domain"
)

// riskFreeRateKey is the settings key holding the Sharpe risk-free rate.
const riskFreeRateKey = "risk_free_rate"

// Repository handles reference data stored in config.db.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new reference data repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "reference").Logger(),
	}
}

// Seed inserts the default profile and stats rows for any key not already
// present. Existing rows are left untouched so runtime tuning survives
// restarts.
func (r *Repository) Seed() error {
	now := time.Now().Unix()

	for _, profile := range DefaultProfiles() {
		_, err := r.db.Exec(`
			INSERT OR IGNORE INTO risk_profiles
				(tolerance, stocks, bonds, alternatives, cash, max_risk, target_return, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, string(profile.Tolerance),
			profile.Baseline.Stocks, profile.Baseline.Bonds,
			profile.Baseline.Alternatives, profile.Baseline.Cash,
			profile.MaxRisk, profile.TargetReturn, now)
		if err != nil {
			return fmt.Errorf("failed to seed risk profile %s: %w", profile.Tolerance, err)
		}
	}

	for class, stats := range DefaultStats() {
		_, err := r.db.Exec(`
			INSERT OR IGNORE INTO asset_class_stats (asset_class, expected_return, risk, updated_at)
			VALUES (?, ?, ?, ?)
		`, string(class), stats.ExpectedReturn, stats.Risk, now)
		if err != nil {
			return fmt.Errorf("failed to seed asset class stats %s: %w", class, err)
		}
	}

	return nil
}

// GetProfile retrieves the risk profile for a tolerance.
// Returns domain.ErrUnknownTolerance when no row exists.
func (r *Repository) GetProfile(tolerance domain.RiskTolerance) (domain.RiskProfile, error) {
	var p domain.RiskProfile
	p.Tolerance = tolerance
	err := r.db.QueryRow(`
		SELECT stocks, bonds, alternatives, cash, max_risk, target_return
		FROM risk_profiles WHERE tolerance = ?
	`, string(tolerance)).Scan(
		&p.Baseline.Stocks, &p.Baseline.Bonds,
		&p.Baseline.Alternatives, &p.Baseline.Cash,
		&p.MaxRisk, &p.TargetReturn)
	if err == sql.ErrNoRows {
		return domain.RiskProfile{}, fmt.Errorf("%w: %q", domain.ErrUnknownTolerance, tolerance)
	}
	if err != nil {
		return domain.RiskProfile{}, fmt.Errorf("failed to get risk profile %s: %w", tolerance, err)
	}
	return p, nil
}

// GetProfiles retrieves all risk profiles keyed by tolerance.
func (r *Repository) GetProfiles() (map[domain.RiskTolerance]domain.RiskProfile, error) {
	rows, err := r.db.Query(`
		SELECT tolerance, stocks, bonds, alternatives, cash, max_risk, target_return
		FROM risk_profiles
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[domain.RiskTolerance]domain.RiskProfile)
	for rows.Next() {
		var p domain.RiskProfile
		var tolerance string
		if err := rows.Scan(&tolerance,
			&p.Baseline.Stocks, &p.Baseline.Bonds,
			&p.Baseline.Alternatives, &p.Baseline.Cash,
			&p.MaxRisk, &p.TargetReturn); err != nil {
			return nil, fmt.Errorf("failed to scan risk profile: %w", err)
		}
		p.Tolerance = domain.RiskTolerance(tolerance)
		profiles[p.Tolerance] = p
	}
	return profiles, rows.Err()
}

// GetStats retrieves the asset class stats table keyed by asset class.
func (r *Repository) GetStats() (map[domain.AssetClass]domain.AssetClassStats, error) {
	rows, err := r.db.Query(`SELECT asset_class, expected_return, risk FROM asset_class_stats`)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset class stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[domain.AssetClass]domain.AssetClassStats)
	for rows.Next() {
		var class string
		var s domain.AssetClassStats
		if err := rows.Scan(&class, &s.ExpectedReturn, &s.Risk); err != nil {
			return nil, fmt.Errorf("failed to scan asset class stats: %w", err)
		}
		stats[domain.AssetClass(class)] = s
	}
	return stats, rows.Err()
}

// GetRiskFreeRate retrieves the configured risk-free rate, falling back to
// the shipped default when the setting is absent or unreadable as a number.
func (r *Repository) GetRiskFreeRate() (float64, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, riskFreeRateKey).Scan(&value)
	if err == sql.ErrNoRows {
		return DefaultRiskFreeRate, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get risk-free rate: %w", err)
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.log.Warn().Str("value", value).Msg("Unparseable risk_free_rate setting, using default")
		return DefaultRiskFreeRate, nil
	}
	return rate, nil
}

// SetRiskFreeRate stores a new risk-free rate.
func (r *Repository) SetRiskFreeRate(rate float64) error {
	now := time.Now().Unix()
	_, err := r.db.Exec(`
		INSERT INTO settings (key, value, description, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, riskFreeRateKey, strconv.FormatFloat(rate, 'f', -1, 64), "Sharpe ratio risk-free rate", now)
	if err != nil {
		return fmt.Errorf("failed to set risk-free rate: %w", err)
	}
	return nil
}
