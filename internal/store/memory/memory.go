package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"resto-backend/internal/domain"
	"resto-backend/internal/store"
)

// Store keeps every collection in process memory. Collections preserve
// insertion order, which the category rollup relies on. All methods copy on
// the way out so callers can never alias internal state.
type Store struct {
	mu         sync.RWMutex
	items      []domain.MenuItem
	categories []domain.Category
	payments   []domain.Payment
	staff      []domain.StaffMember
	tables     []domain.Table
}

func New() *Store {
	return &Store{}
}

func (s *Store) Health(ctx context.Context) error {
	return nil
}

func (s *Store) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			out := it
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	s.items = append(s.items, item)
	out := item
	return &out, nil
}

// UpdateMenuItem overwrites the editable fields in place. The accumulated
// OrderCount and Revenue survive edits; only an explicit order flow moves them.
func (s *Store) UpdateMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != item.ID {
			continue
		}
		s.items[i].Name = item.Name
		s.items[i].CategoryID = item.CategoryID
		s.items[i].Price = item.Price
		s.items[i].Description = item.Description
		s.items[i].Status = item.Status
		s.items[i].UpdatedAt = time.Now()
		out := s.items[i]
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) CountMenuItemsByCategory(ctx context.Context, categoryID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *Store) AddCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.ID == c.ID {
			return nil, store.ErrDuplicate
		}
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.categories = append(s.categories, c)
	out := c
	return &out, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID != c.ID {
			continue
		}
		s.categories[i].Name = c.Name
		s.categories[i].IsActive = c.IsActive
		s.categories[i].UpdatedAt = time.Now()
		out := s.categories[i]
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

func (s *Store) AddPayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	s.payments = append(s.payments, p)
	out := p
	return &out, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.StaffMember, len(s.staff))
	copy(out, s.staff)
	return out, nil
}

func (s *Store) GetStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.staff {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetStaffByEmail(ctx context.Context, email string) (*domain.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.staff {
		if m.Email == email {
			out := m
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) AddStaff(ctx context.Context, m domain.StaffMember) (*domain.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	for _, existing := range s.staff {
		if existing.Email == m.Email {
			return nil, store.ErrDuplicate
		}
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.staff = append(s.staff, m)
	out := m
	return &out, nil
}

func (s *Store) UpdateStaff(ctx context.Context, m domain.StaffMember) (*domain.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if s.staff[i].ID != m.ID {
			continue
		}
		s.staff[i].Name = m.Name
		s.staff[i].Email = m.Email
		s.staff[i].Role = m.Role
		s.staff[i].Salary = m.Salary
		s.staff[i].Status = m.Status
		s.staff[i].Shift = m.Shift
		if m.PasswordHash != nil {
			s.staff[i].PasswordHash = m.PasswordHash
		}
		s.staff[i].UpdatedAt = time.Now()
		out := s.staff[i]
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteStaff(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if s.staff[i].ID == id {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListTables(ctx context.Context) ([]domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Table, len(s.tables))
	copy(out, s.tables)
	return out, nil
}

func (s *Store) AddTable(ctx context.Context, t domain.Table) (*domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tables = append(s.tables, t)
	out := t
	return &out, nil
}

func (s *Store) UpdateTable(ctx context.Context, t domain.Table) (*domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tables {
		if s.tables[i].ID != t.ID {
			continue
		}
		s.tables[i].Number = t.Number
		s.tables[i].Capacity = t.Capacity
		s.tables[i].Status = t.Status
		s.tables[i].UpdatedAt = time.Now()
		out := s.tables[i]
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteTable(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tables {
		if s.tables[i].ID == id {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
