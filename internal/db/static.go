package db

import (
	"context"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
)

// StaticSchemes serves the built-in scheme table when no database is
// configured.
type StaticSchemes struct{}

var _ SchemeStore = StaticSchemes{}

// SchemesForLocation implements SchemeStore
func (StaticSchemes) SchemesForLocation(_ context.Context, location string) ([]catalog.StateScheme, error) {
	return catalog.SchemesForLocation(location), nil
}

// States implements SchemeStore
func (StaticSchemes) States(context.Context) ([]string, error) {
	return catalog.States(), nil
}

// Scheme implements SchemeStore
func (StaticSchemes) Scheme(_ context.Context, id string) (*catalog.StateScheme, error) {
	for _, s := range catalog.StateSchemes() {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}
