package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/domain"
)

func pipelineFixture() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "i1", Name: "Margherita Pizza", Description: "Tomato and mozzarella", CategoryID: "main", Price: "11.00", OrderCount: 30},
		{ID: "i2", Name: "Pepperoni Pizza", Description: "Spicy pepperoni", CategoryID: "main", Price: "13.50", OrderCount: 45},
		{ID: "i3", Name: "Iced Tea", Description: "House brew with lemon", CategoryID: "drinks", Price: "3.00", OrderCount: 45},
		{ID: "i4", Name: "Tiramisu", Description: "Classic dessert", CategoryID: "desserts", Price: "6.50", OrderCount: 12},
	}
}

func TestViewCategoryFilter(t *testing.T) {
	items := pipelineFixture()

	t.Run("all passes everything", func(t *testing.T) {
		out := View(items, AllCategoryID, "", SortNone)
		assert.Len(t, out, len(items))
	})

	t.Run("exact match only", func(t *testing.T) {
		out := View(items, "main", "", SortNone)
		require.Len(t, out, 2)
		assert.Equal(t, "i1", out[0].ID)
		assert.Equal(t, "i2", out[1].ID)
	})

	t.Run("case sensitive", func(t *testing.T) {
		out := View(items, "Main", "", SortNone)
		assert.Empty(t, out)
	})
}

func TestViewSearchFilter(t *testing.T) {
	items := pipelineFixture()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		out := View(items, AllCategoryID, "PIZZA", SortNone)
		assert.Len(t, out, 2)
	})

	t.Run("matches description", func(t *testing.T) {
		out := View(items, AllCategoryID, "lemon", SortNone)
		require.Len(t, out, 1)
		assert.Equal(t, "Iced Tea", out[0].Name)
	})

	t.Run("runs after category filter", func(t *testing.T) {
		out := View(items, "drinks", "pizza", SortNone)
		assert.Empty(t, out)
	})
}

func TestViewSort(t *testing.T) {
	items := pipelineFixture()

	t.Run("popular descends and is stable", func(t *testing.T) {
		out := View(items, AllCategoryID, "", SortPopular)
		require.Len(t, out, 4)
		// i2 and i3 tie on 45 orders; i2 comes first in the source.
		assert.Equal(t, []string{"i2", "i3", "i1", "i4"}, ids(out))
	})

	t.Run("price-high", func(t *testing.T) {
		out := View(items, AllCategoryID, "", SortPriceHigh)
		assert.Equal(t, []string{"i2", "i1", "i4", "i3"}, ids(out))
	})

	t.Run("price-low", func(t *testing.T) {
		out := View(items, AllCategoryID, "", SortPriceLow)
		assert.Equal(t, []string{"i3", "i4", "i1", "i2"}, ids(out))
	})

	t.Run("none keeps filtered order", func(t *testing.T) {
		out := View(items, AllCategoryID, "", SortNone)
		assert.Equal(t, []string{"i1", "i2", "i3", "i4"}, ids(out))
	})
}

func TestViewUnparseablePriceTrails(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "a", Price: "10.00"},
		{ID: "b", Price: "abc"},
		{ID: "c", Price: "5.00"},
	}

	high := View(items, AllCategoryID, "", SortPriceHigh)
	assert.Equal(t, []string{"a", "c", "b"}, ids(high))

	low := View(items, AllCategoryID, "", SortPriceLow)
	assert.Equal(t, []string{"c", "a", "b"}, ids(low))
}

func TestViewDoesNotMutateInput(t *testing.T) {
	items := pipelineFixture()
	View(items, AllCategoryID, "", SortPriceHigh)
	assert.Equal(t, []string{"i1", "i2", "i3", "i4"}, ids(items))
}

func TestViewIdempotent(t *testing.T) {
	items := pipelineFixture()
	first := View(items, "main", "pizza", SortPopular)
	second := View(items, "main", "pizza", SortPopular)
	assert.Equal(t, first, second)
}

func TestViewRoundTrip(t *testing.T) {
	items := pipelineFixture()
	// "all" + empty term is a pure sort: same length, same id multiset.
	out := View(items, AllCategoryID, "", SortPopular)
	require.Len(t, out, len(items))
	assert.ElementsMatch(t, ids(items), ids(out))
}

func TestViewEmptyInput(t *testing.T) {
	out := View(nil, AllCategoryID, "anything", SortPriceLow)
	assert.Empty(t, out)
}

func ids(items []domain.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
