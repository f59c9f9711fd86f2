package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"resto-backend/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// Store implements store.Store on top of Postgres.
type Store struct {
	DB *db.Postgres
}

func New(pg *db.Postgres) *Store {
	return &Store{DB: pg}
}

// EnsureSchema applies the embedded schema. Every statement is idempotent so
// this is safe to run on each startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.DB.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) Health(ctx context.Context) error {
	return s.DB.Health(ctx)
}
