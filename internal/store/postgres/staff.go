package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"resto-backend/internal/db"
	"resto-backend/internal/domain"
	"resto-backend/internal/store"
)

const staffColumns = `id, name, email, role, salary, status, shift, password_hash, created_at, updated_at`

func scanStaff(row pgx.Row) (*domain.StaffMember, error) {
	var m domain.StaffMember
	var role, status, shift string
	var hash pgtype.Text
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &role, &m.Salary, &status, &shift, &hash, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Role = domain.StaffRole(role)
	m.Status = domain.StaffStatus(status)
	m.Shift = domain.Shift(shift)
	if hash.Valid {
		v := hash.String
		m.PasswordHash = &v
	}
	return &m, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	rows, err := s.DB.Pool.Query(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.StaffMember
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

func (s *Store) GetStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	m, err := scanStaff(s.DB.Pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return m, err
}

func (s *Store) GetStaffByEmail(ctx context.Context, email string) (*domain.StaffMember, error) {
	m, err := scanStaff(s.DB.Pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE email=$1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return m, err
}

func (s *Store) AddStaff(ctx context.Context, m domain.StaffMember) (*domain.StaffMember, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	err := s.DB.Pool.QueryRow(ctx, `
		INSERT INTO staff (id, name, email, role, salary, status, shift, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now(), now())
		RETURNING created_at, updated_at
	`, m.ID, m.Name, m.Email, string(m.Role), m.Salary, string(m.Status), string(m.Shift), m.PasswordHash).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, store.ErrDuplicate
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) UpdateStaff(ctx context.Context, m domain.StaffMember) (*domain.StaffMember, error) {
	row := s.DB.Pool.QueryRow(ctx, `
		UPDATE staff
		SET name=$1, email=$2, role=$3, salary=$4, status=$5, shift=$6,
		    password_hash=COALESCE($7, password_hash), updated_at=now()
		WHERE id=$8
		RETURNING `+staffColumns+`
	`, m.Name, m.Email, string(m.Role), m.Salary, string(m.Status), string(m.Shift), m.PasswordHash, m.ID)
	out, err := scanStaff(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return out, err
}

func (s *Store) DeleteStaff(ctx context.Context, id string) error {
	ct, err := s.DB.Pool.Exec(ctx, `DELETE FROM staff WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
