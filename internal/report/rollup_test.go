package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/domain"
)

func menuFixture() ([]domain.MenuItem, []domain.Category) {
	items := []domain.MenuItem{
		{ID: "i1", Name: "Grilled Chicken", CategoryID: "main", OrderCount: 10, Revenue: "120.00 USD"},
		{ID: "i2", Name: "Beef Steak", CategoryID: "main", OrderCount: 5, Revenue: "250.50 USD"},
		{ID: "i3", Name: "Lemonade", CategoryID: "drinks", OrderCount: 20, Revenue: "80.00 USD"},
	}
	categories := []domain.Category{
		{ID: "main", Name: "Main Dishes", IsActive: true},
		{ID: "drinks", Name: "Drinks", IsActive: true},
	}
	return items, categories
}

func TestRollup(t *testing.T) {
	items, categories := menuFixture()

	stats := Rollup(items, categories)
	require.Len(t, stats, 3)

	all := stats[0]
	assert.Equal(t, AllCategoryID, all.ID)
	assert.Equal(t, 3, all.Count)
	assert.Equal(t, 35, all.TotalOrders)
	assert.InDelta(t, 450.50, all.TotalRevenue, 0.001)

	main := stats[1]
	assert.Equal(t, "main", main.ID)
	assert.Equal(t, "Main Dishes", main.Name)
	assert.Equal(t, 2, main.Count)
	assert.Equal(t, 15, main.TotalOrders)
	assert.InDelta(t, 370.50, main.TotalRevenue, 0.001)

	drinks := stats[2]
	assert.Equal(t, 1, drinks.Count)
	assert.Equal(t, 20, drinks.TotalOrders)
}

func TestRollupOrphans(t *testing.T) {
	items, categories := menuFixture()
	items = append(items, domain.MenuItem{ID: "i4", Name: "Ghost Dish", CategoryID: "deleted-cat", OrderCount: 7, Revenue: "30.00"})

	stats := Rollup(items, categories)

	// The orphan counts toward "all" but toward no category.
	assert.Equal(t, 4, stats[0].Count)
	counted := 0
	for _, st := range stats[1:] {
		counted += st.Count
	}
	assert.Equal(t, 3, counted)
	assert.Equal(t, 1, OrphanCount(items, categories))
	assert.Equal(t, len(items), counted+OrphanCount(items, categories))
}

func TestRollupInactiveCategoryStillReported(t *testing.T) {
	items, categories := menuFixture()
	categories = append(categories, domain.Category{ID: "seasonal", Name: "Seasonal", IsActive: false})

	stats := Rollup(items, categories)
	require.Len(t, stats, 4)
	assert.Equal(t, "seasonal", stats[3].ID)
	assert.False(t, stats[3].IsActive)
	assert.Equal(t, 0, stats[3].Count)
}

func TestRollupTolerantRevenueParse(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "i1", CategoryID: "main", Revenue: "$1,200.50"},
		{ID: "i2", CategoryID: "main", Revenue: "not a number"},
	}
	categories := []domain.Category{{ID: "main", Name: "Main"}}

	stats := Rollup(items, categories)
	// "$1,200.50" keeps digits and the dot; garbage contributes 0.
	assert.InDelta(t, 1200.50, stats[1].TotalRevenue, 0.001)
}

func TestRollupIdempotent(t *testing.T) {
	items, categories := menuFixture()
	first := Rollup(items, categories)
	second := Rollup(items, categories)
	assert.Equal(t, first, second)
}

func TestRollupEmpty(t *testing.T) {
	stats := Rollup(nil, nil)
	require.Len(t, stats, 1)
	assert.Equal(t, AllCategoryID, stats[0].ID)
	assert.Equal(t, 0, stats[0].Count)
}
