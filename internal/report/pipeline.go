package report

import (
	"math"
	"sort"
	"strings"

	"resto-backend/internal/domain"
)

type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortPriceHigh SortKey = "price-high"
	SortPriceLow  SortKey = "price-low"
	SortNone      SortKey = "none"
)

// View applies category filter, then search filter, then sort, in that fixed
// order. The input slice is never mutated; the result is a fresh slice.
//
// Category "all" passes every item, anything else matches CategoryID exactly.
// The search term matches case-insensitively against Name or Description; an
// empty term passes everything. Sorting is stable, ties keep their filtered
// order. Items with an unparseable Price sort after all parseable ones for
// both price keys.
func View(items []domain.MenuItem, categoryID, search string, key SortKey) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(items))
	term := strings.ToLower(search)
	for _, it := range items {
		if categoryID != AllCategoryID && it.CategoryID != categoryID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Description), term) {
			continue
		}
		out = append(out, it)
	}

	switch key {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].OrderCount > out[j].OrderCount
		})
	case SortPriceHigh:
		sortByPrice(out, true)
	case SortPriceLow:
		sortByPrice(out, false)
	}
	return out
}

// sortByPrice keeps unparseable prices (NaN) after every parseable one,
// regardless of direction, so the trailing position is the same on every run.
func sortByPrice(out []domain.MenuItem, desc bool) {
	sort.SliceStable(out, func(i, j int) bool {
		av := parsePrice(out[i].Price)
		bv := parsePrice(out[j].Price)
		if math.IsNaN(av) {
			return false
		}
		if math.IsNaN(bv) {
			return true
		}
		if desc {
			return av > bv
		}
		return av < bv
	})
}

func parsePrice(s string) float64 {
	v, ok := ParseAmount(s)
	if !ok {
		return math.NaN()
	}
	return v
}
