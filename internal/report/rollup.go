package report

import "resto-backend/internal/domain"

// AllCategoryID identifies the synthetic rollup entry covering the whole menu.
const AllCategoryID = "all"

type CategoryStat struct {
	ID           string
	Name         string
	IsActive     bool
	Count        int
	TotalOrders  int
	TotalRevenue float64
}

// Rollup derives per-category stats from a menu snapshot. The result starts
// with the synthetic "all" entry, then one entry per category in list order.
// Items whose CategoryID matches no category are orphans: they count toward
// "all" but toward no category. Revenue display strings parse tolerantly,
// unparseable values contribute 0.
func Rollup(items []domain.MenuItem, categories []domain.Category) []CategoryStat {
	stats := make([]CategoryStat, 0, len(categories)+1)

	all := CategoryStat{ID: AllCategoryID, Name: "All", IsActive: true, Count: len(items)}
	for _, it := range items {
		all.TotalOrders += it.OrderCount
		rev, _ := ParseAmount(it.Revenue)
		all.TotalRevenue += rev
	}
	stats = append(stats, all)

	for _, c := range categories {
		st := CategoryStat{ID: c.ID, Name: c.Name, IsActive: c.IsActive}
		for _, it := range items {
			if it.CategoryID != c.ID {
				continue
			}
			st.Count++
			st.TotalOrders += it.OrderCount
			rev, _ := ParseAmount(it.Revenue)
			st.TotalRevenue += rev
		}
		stats = append(stats, st)
	}
	return stats
}

// OrphanCount reports how many items reference a category that no longer
// exists. Rollup silently excludes them from per-category entries.
func OrphanCount(items []domain.MenuItem, categories []domain.Category) int {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}
	n := 0
	for _, it := range items {
		if _, ok := known[it.CategoryID]; !ok {
			n++
		}
	}
	return n
}
