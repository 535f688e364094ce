package db

import (
	"context"
	"fmt"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
)

const createSchemesTable = `
	CREATE TABLE IF NOT EXISTS government_schemes (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		short_name   TEXT NOT NULL,
		state        TEXT NOT NULL,
		description  TEXT NOT NULL,
		eligibility  TEXT NOT NULL,
		coverage     TEXT NOT NULL,
		official_url TEXT NOT NULL DEFAULT '',
		is_national  BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_government_schemes_state ON government_schemes (lower(state));
`

// Migrate creates the schemes table if it does not exist
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, createSchemesTable); err != nil {
		return fmt.Errorf("failed to create government_schemes: %w", err)
	}
	return nil
}

// SeedSchemes inserts schemes that are not stored yet. Rows already
// present are left alone so operators can edit them in place. It returns
// the number of rows inserted.
func (db *DB) SeedSchemes(ctx context.Context, schemes []catalog.StateScheme) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO government_schemes
			(id, name, short_name, state, description, eligibility, coverage, official_url, is_national)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	inserted := 0
	for _, s := range schemes {
		res, err := tx.ExecContext(ctx, query,
			s.ID, s.Name, s.ShortName, s.State, s.Description,
			s.Eligibility, s.Coverage, s.OfficialURL, s.IsNational,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to seed scheme %s: %w", s.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return inserted, nil
}
