package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"resto-backend/internal/domain"
	"resto-backend/internal/store"
)

func (s *Store) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := s.DB.Pool.Query(ctx, `
		SELECT id, name, category_id, price, description, status, order_count, revenue, created_at, updated_at
		FROM menu_items
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		var status string
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.Price, &it.Description, &status, &it.OrderCount, &it.Revenue, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Status = domain.ItemStatus(status)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	row := s.DB.Pool.QueryRow(ctx, `
		SELECT id, name, category_id, price, description, status, order_count, revenue, created_at, updated_at
		FROM menu_items
		WHERE id=$1
	`, id)
	var it domain.MenuItem
	var status string
	if err := row.Scan(&it.ID, &it.Name, &it.CategoryID, &it.Price, &it.Description, &status, &it.OrderCount, &it.Revenue, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	it.Status = domain.ItemStatus(status)
	return &it, nil
}

func (s *Store) AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := s.DB.Pool.QueryRow(ctx, `
		INSERT INTO menu_items (id, name, category_id, price, description, status, order_count, revenue, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now(), now())
		RETURNING created_at, updated_at
	`, item.ID, item.Name, item.CategoryID, item.Price, item.Description, string(item.Status), item.OrderCount, item.Revenue).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem leaves order_count and revenue untouched: edits never reset
// what the item already earned.
func (s *Store) UpdateMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	row := s.DB.Pool.QueryRow(ctx, `
		UPDATE menu_items
		SET name=$1, category_id=$2, price=$3, description=$4, status=$5, updated_at=now()
		WHERE id=$6
		RETURNING id, name, category_id, price, description, status, order_count, revenue, created_at, updated_at
	`, item.Name, item.CategoryID, item.Price, item.Description, string(item.Status), item.ID)
	var out domain.MenuItem
	var status string
	if err := row.Scan(&out.ID, &out.Name, &out.CategoryID, &out.Price, &out.Description, &status, &out.OrderCount, &out.Revenue, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	out.Status = domain.ItemStatus(status)
	return &out, nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	ct, err := s.DB.Pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CountMenuItemsByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := s.DB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items WHERE category_id=$1`, categoryID).Scan(&n)
	return n, err
}
