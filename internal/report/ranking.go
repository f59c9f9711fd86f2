package report

import (
	"sort"

	"resto-backend/internal/domain"
)

// TopN returns the n most-ordered items, ties keeping their original relative
// order. Asking for more than there is returns everything, sorted.
func TopN(items []domain.MenuItem, n int) []domain.MenuItem {
	ranked := make([]domain.MenuItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OrderCount > ranked[j].OrderCount
	})
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// MostOrdered finds the item with the highest order count. The empty menu
// returns the ("none", 0) sentinel instead of failing, matching what the
// dashboard shows before any orders exist.
func MostOrdered(items []domain.MenuItem) (string, int) {
	if len(items) == 0 {
		return "none", 0
	}
	best := items[0]
	for _, it := range items[1:] {
		if it.OrderCount > best.OrderCount {
			best = it
		}
	}
	return best.Name, best.OrderCount
}
