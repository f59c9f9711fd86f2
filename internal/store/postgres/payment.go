package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"resto-backend/internal/domain"
)

func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := s.DB.Pool.Query(ctx, `
		SELECT id, paid_date, paid_time, amount, method, table_id, customer_name, reference, status, created_at
		FROM payments
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var method, status string
		var tableID, customerName, reference pgtype.Text
		if err := rows.Scan(&p.ID, &p.Date, &p.Time, &p.Amount, &method, &tableID, &customerName, &reference, &status, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Method = domain.PaymentMethod(method)
		p.Status = domain.PaymentStatus(status)
		if tableID.Valid {
			v := tableID.String
			p.TableID = &v
		}
		if customerName.Valid {
			v := customerName.String
			p.CustomerName = &v
		}
		if reference.Valid {
			v := reference.String
			p.Reference = &v
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (s *Store) AddPayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := s.DB.Pool.QueryRow(ctx, `
		INSERT INTO payments (id, paid_date, paid_time, amount, method, table_id, customer_name, reference, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now())
		RETURNING created_at
	`, p.ID, p.Date, p.Time, p.Amount, string(p.Method), p.TableID, p.CustomerName, p.Reference, string(p.Status)).
		Scan(&p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
