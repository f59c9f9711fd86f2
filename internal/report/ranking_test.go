package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/domain"
)

func TestTopN(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "a", OrderCount: 5},
		{ID: "b", OrderCount: 20},
		{ID: "c", OrderCount: 20},
		{ID: "d", OrderCount: 1},
	}

	t.Run("sorts descending, stable on ties", func(t *testing.T) {
		top := TopN(items, 3)
		assert.Equal(t, []string{"b", "c", "a"}, ids(top))
	})

	t.Run("n beyond length returns everything", func(t *testing.T) {
		top := TopN(items, 10)
		assert.Len(t, top, 4)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TopN(nil, 5))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		TopN(items, 2)
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(items))
	})
}

func TestMostOrdered(t *testing.T) {
	t.Run("picks the maximum", func(t *testing.T) {
		name, orders := MostOrdered([]domain.MenuItem{
			{Name: "Soup", OrderCount: 3},
			{Name: "Burger", OrderCount: 9},
			{Name: "Salad", OrderCount: 9},
		})
		assert.Equal(t, "Burger", name)
		assert.Equal(t, 9, orders)
	})

	t.Run("sentinel on empty menu", func(t *testing.T) {
		name, orders := MostOrdered(nil)
		assert.Equal(t, "none", name)
		assert.Equal(t, 0, orders)
	})
}

func TestShare(t *testing.T) {
	assert.InDelta(t, 50, Share(5, 10), 0.001)
	assert.Equal(t, 0.0, Share(5, 0))
	assert.False(t, math.IsNaN(Share(0, 0)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 0, Percent(42, 0))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.50", 12.50, true},
		{"1250.00 USD", 1250.00, true},
		{"$1,099.99", 1099.99, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		assert.InDelta(t, tc.want, got, 0.001, tc.in)
	}
}
