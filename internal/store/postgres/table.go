package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"resto-backend/internal/domain"
	"resto-backend/internal/store"
)

func (s *Store) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := s.DB.Pool.Query(ctx, `
		SELECT id, number, capacity, status, created_at, updated_at
		FROM tables
		ORDER BY number ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Table
	for rows.Next() {
		var t domain.Table
		var status string
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Status = domain.TableStatus(status)
		items = append(items, t)
	}
	return items, rows.Err()
}

func (s *Store) AddTable(ctx context.Context, t domain.Table) (*domain.Table, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := s.DB.Pool.QueryRow(ctx, `
		INSERT INTO tables (id, number, capacity, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4, now(), now())
		RETURNING created_at, updated_at
	`, t.ID, t.Number, t.Capacity, string(t.Status)).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) UpdateTable(ctx context.Context, t domain.Table) (*domain.Table, error) {
	row := s.DB.Pool.QueryRow(ctx, `
		UPDATE tables
		SET number=$1, capacity=$2, status=$3, updated_at=now()
		WHERE id=$4
		RETURNING id, number, capacity, status, created_at, updated_at
	`, t.Number, t.Capacity, string(t.Status), t.ID)
	var out domain.Table
	var status string
	if err := row.Scan(&out.ID, &out.Number, &out.Capacity, &status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	out.Status = domain.TableStatus(status)
	return &out, nil
}

func (s *Store) DeleteTable(ctx context.Context, id string) error {
	ct, err := s.DB.Pool.Exec(ctx, `DELETE FROM tables WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
