package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
)

// SchemeStore looks up government health schemes
type SchemeStore interface {
	// SchemesForLocation returns national schemes followed by the schemes
	// of the state a city or state name resolves to.
	SchemesForLocation(ctx context.Context, location string) ([]catalog.StateScheme, error)
	// States lists the states that have their own schemes
	States(ctx context.Context) ([]string, error)
	// Scheme returns one scheme by ID, ErrNotFound if absent
	Scheme(ctx context.Context, id string) (*catalog.StateScheme, error)
}

var _ SchemeStore = (*DB)(nil)

const schemeColumns = `id, name, short_name, state, description, eligibility, coverage, official_url, is_national`

func scanScheme(row interface{ Scan(...any) error }) (catalog.StateScheme, error) {
	var s catalog.StateScheme
	err := row.Scan(&s.ID, &s.Name, &s.ShortName, &s.State, &s.Description,
		&s.Eligibility, &s.Coverage, &s.OfficialURL, &s.IsNational)
	return s, err
}

// SchemesForLocation implements SchemeStore
func (db *DB) SchemesForLocation(ctx context.Context, location string) ([]catalog.StateScheme, error) {
	query := `
		SELECT ` + schemeColumns + `
		FROM government_schemes
		WHERE is_national = TRUE OR lower(state) = lower($1)
		ORDER BY is_national DESC, name
	`

	rows, err := db.QueryContext(ctx, query, catalog.ResolveState(location))
	if err != nil {
		return nil, fmt.Errorf("failed to get schemes: %w", err)
	}
	defer rows.Close()

	schemes := make([]catalog.StateScheme, 0)
	for rows.Next() {
		s, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheme: %w", err)
		}
		schemes = append(schemes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schemes: %w", err)
	}

	return schemes, nil
}

// States implements SchemeStore
func (db *DB) States(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT state
		FROM government_schemes
		WHERE is_national = FALSE
		ORDER BY state
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get states: %w", err)
	}
	defer rows.Close()

	states := make([]string, 0)
	for rows.Next() {
		var state string
		if err := rows.Scan(&state); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read states: %w", err)
	}

	return states, nil
}

// Scheme implements SchemeStore
func (db *DB) Scheme(ctx context.Context, id string) (*catalog.StateScheme, error) {
	query := `
		SELECT ` + schemeColumns + `
		FROM government_schemes
		WHERE id = $1
	`

	s, err := scanScheme(db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheme: %w", err)
	}

	return &s, nil
}
