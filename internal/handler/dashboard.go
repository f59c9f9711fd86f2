package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"resto-backend/internal/report"
	"resto-backend/internal/store"
)

type DashboardHandler struct {
	Store interface {
		store.MenuStore
		store.PaymentStore
	}
}

func (h DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.summary)
}

// summary is the admin landing screen: lifetime and today totals from the
// payment ledger plus the most-ordered menu item. Everything is recomputed
// from snapshots on each request.
func (h DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	items, err := h.Store.ListMenuItems(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	summary := report.Summarize(report.Aggregate(payments))
	today := report.TodayReport(payments, time.Now().Format(dateLayout))
	topName, topOrders := report.MostOrdered(items)

	writeJSON(w, http.StatusOK, map[string]any{
		"totalRevenue":     summary.TotalAmount,
		"totalPayments":    summary.TotalCount,
		"cardShare":        report.Percent(summary.CardTotal, summary.TotalAmount),
		"todayRevenue":     today.TotalAmount,
		"todayPayments":    today.TotalCount,
		"mostOrderedItem":  topName,
		"mostOrderedCount": topOrders,
		"menuItems":        len(items),
	})
}
