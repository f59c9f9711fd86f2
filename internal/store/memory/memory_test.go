package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/domain"
	"resto-backend/internal/store"
)

func TestMenuItemLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	added, err := s.AddMenuItem(ctx, domain.MenuItem{Name: "Soup", CategoryID: "main", Price: "4.50", OrderCount: 3, Revenue: "13.50"})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	t.Run("update preserves accumulators", func(t *testing.T) {
		updated, err := s.UpdateMenuItem(ctx, domain.MenuItem{ID: added.ID, Name: "Onion Soup", CategoryID: "main", Price: "5.00", Status: domain.ItemAvailable})
		require.NoError(t, err)
		assert.Equal(t, "Onion Soup", updated.Name)
		assert.Equal(t, "5.00", updated.Price)
		assert.Equal(t, 3, updated.OrderCount)
		assert.Equal(t, "13.50", updated.Revenue)
	})

	t.Run("snapshots do not alias the store", func(t *testing.T) {
		items, err := s.ListMenuItems(ctx)
		require.NoError(t, err)
		items[0].Name = "Mutated"
		again, err := s.ListMenuItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Onion Soup", again[0].Name)
	})

	t.Run("hard delete", func(t *testing.T) {
		require.NoError(t, s.DeleteMenuItem(ctx, added.ID))
		_, err := s.GetMenuItem(ctx, added.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCategoryDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.AddCategory(ctx, domain.Category{ID: "drinks", Name: "Drinks", IsActive: true})
	require.NoError(t, err)
	_, err = s.AddCategory(ctx, domain.Category{ID: "drinks", Name: "Drinks Again"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestCategoryOrderPreserved(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, id := range []string{"c", "a", "b"} {
		_, err := s.AddCategory(ctx, domain.Category{ID: id, Name: id})
		require.NoError(t, err)
	}
	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", cats[0].ID)
	assert.Equal(t, "a", cats[1].ID)
	assert.Equal(t, "b", cats[2].ID)
}

func TestCountMenuItemsByCategory(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, _ = s.AddMenuItem(ctx, domain.MenuItem{Name: "A", CategoryID: "x"})
	_, _ = s.AddMenuItem(ctx, domain.MenuItem{Name: "B", CategoryID: "x"})
	_, _ = s.AddMenuItem(ctx, domain.MenuItem{Name: "C", CategoryID: "y"})

	n, err := s.CountMenuItemsByCategory(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPaymentsAppendOnly(t *testing.T) {
	ctx := context.Background()
	s := New()
	p, err := s.AddPayment(ctx, domain.Payment{Date: "2024-01-15", Amount: 10, Method: domain.MethodCash, Status: domain.PaymentCompleted})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	list, err := s.ListPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStaffByEmail(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.AddStaff(ctx, domain.StaffMember{Name: "Ana", Email: "ana@resto.local", Role: domain.RoleChef, Status: domain.StaffActive})
	require.NoError(t, err)

	m, err := s.GetStaffByEmail(ctx, "ana@resto.local")
	require.NoError(t, err)
	assert.Equal(t, "Ana", m.Name)

	_, err = s.AddStaff(ctx, domain.StaffMember{Name: "Other", Email: "ana@resto.local"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.SeedDefaults(ctx))

	items, err := s.ListMenuItems(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main-dishes", cats[0].ID)

	admin, err := s.GetStaffByEmail(ctx, "admin@resto.local")
	require.NoError(t, err)
	require.NotNil(t, admin.PasswordHash)
}
