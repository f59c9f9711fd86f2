package store

import (
	"context"
	"errors"

	"resto-backend/internal/domain"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// Store is the record store the aggregation engine reads from. List methods
// return snapshots the caller may hold on to; implementations never hand out
// aliased internal state. Mutations come from HTTP handlers only — the
// aggregation code never writes.
type Store interface {
	MenuStore
	CategoryStore
	PaymentStore
	StaffStore
	TableStore

	Health(ctx context.Context) error
}

type MenuStore interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	CountMenuItemsByCategory(ctx context.Context, categoryID string) (int, error)
}

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	AddCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// PaymentStore has no update or delete: payments are append-only.
type PaymentStore interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	AddPayment(ctx context.Context, p domain.Payment) (*domain.Payment, error)
}

type StaffStore interface {
	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
	GetStaffByEmail(ctx context.Context, email string) (*domain.StaffMember, error)
	GetStaff(ctx context.Context, id string) (*domain.StaffMember, error)
	AddStaff(ctx context.Context, m domain.StaffMember) (*domain.StaffMember, error)
	UpdateStaff(ctx context.Context, m domain.StaffMember) (*domain.StaffMember, error)
	DeleteStaff(ctx context.Context, id string) error
}

type TableStore interface {
	ListTables(ctx context.Context) ([]domain.Table, error)
	AddTable(ctx context.Context, t domain.Table) (*domain.Table, error)
	UpdateTable(ctx context.Context, t domain.Table) (*domain.Table, error)
	DeleteTable(ctx context.Context, id string) error
}
