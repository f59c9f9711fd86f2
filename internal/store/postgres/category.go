package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"resto-backend/internal/db"
	"resto-backend/internal/domain"
	"resto-backend/internal/store"
)

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.DB.Pool.Query(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM categories
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (s *Store) AddCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	err := s.DB.Pool.QueryRow(ctx, `
		INSERT INTO categories (id, name, is_active, created_at, updated_at)
		VALUES ($1,$2,$3, now(), now())
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.IsActive).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, store.ErrDuplicate
		}
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	row := s.DB.Pool.QueryRow(ctx, `
		UPDATE categories
		SET name=$1, is_active=$2, updated_at=now()
		WHERE id=$3
		RETURNING id, name, is_active, created_at, updated_at
	`, c.Name, c.IsActive, c.ID)
	var out domain.Category
	if err := row.Scan(&out.ID, &out.Name, &out.IsActive, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	ct, err := s.DB.Pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
