package reference

import "database/sql"

// Schema for the reference tables in config.db. Both tables are tunable at
// runtime; the seeded rows carry the shipped defaults.
const referenceSchema = `
CREATE TABLE IF NOT EXISTS risk_profiles (
    tolerance TEXT PRIMARY KEY,
    stocks REAL NOT NULL,
    bonds REAL NOT NULL,
    alternatives REAL NOT NULL,
    cash REAL NOT NULL,
    max_risk REAL NOT NULL,
    target_return REAL NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS asset_class_stats (
    asset_class TEXT PRIMARY KEY,
    expected_return REAL NOT NULL,
    risk REAL NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    description TEXT,
    updated_at INTEGER NOT NULL
);
`

// InitSchema ensures the reference tables exist in config.db
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(referenceSchema)
	return err
}
