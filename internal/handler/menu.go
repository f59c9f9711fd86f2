package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"resto-backend/internal/domain"
	"resto-backend/internal/report"
	"resto-backend/internal/store"
)

type MenuHandler struct {
	Store    store.MenuStore
	Currency string
}

func (h MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.list)
	r.Get("/menu/top", h.top)
}

func (h MenuHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/menu", h.create)
	r.Put("/menu/{id}", h.update)
	r.Delete("/menu/{id}", h.delete)
}

// list serves the filtered, searched and sorted menu view. Filtering happens
// on a snapshot; the store is never mutated here.
func (h MenuHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListMenuItems(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	q := r.URL.Query()
	categoryID := q.Get("category")
	if categoryID == "" {
		categoryID = report.AllCategoryID
	}
	sortKey := report.SortKey(q.Get("sort"))
	if sortKey == "" {
		sortKey = report.SortNone
	}

	view := report.View(items, categoryID, q.Get("search"), sortKey)
	writeJSON(w, http.StatusOK, toMenuResponses(view))
}

func (h MenuHandler) top(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListMenuItems(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	top := report.TopN(items, limit)
	_, maxOrders := report.MostOrdered(items)
	resp := make([]map[string]any, 0, len(top))
	for _, it := range top {
		resp = append(resp, map[string]any{
			"id":         it.ID,
			"name":       it.Name,
			"orderCount": it.OrderCount,
			"revenue":    it.Revenue,
			"share":      report.Percent(float64(it.OrderCount), float64(maxOrders)),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type menuItemRequest struct {
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (req menuItemRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.CategoryID == "" {
		return "categoryId is required"
	}
	price, ok := report.ParseAmount(req.Price)
	if !ok || price < 0 {
		return "price must be a non-negative amount"
	}
	return ""
}

func (h MenuHandler) create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	status := domain.ItemStatus(req.Status)
	if status == "" {
		status = domain.ItemAvailable
	}

	item, err := h.Store.AddMenuItem(r.Context(), domain.MenuItem{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
		Status:      status,
		Revenue:     "0.00 " + h.Currency,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMenuResponse(*item))
}

func (h MenuHandler) update(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	status := domain.ItemStatus(req.Status)
	if status == "" {
		status = domain.ItemAvailable
	}

	item, err := h.Store.UpdateMenuItem(r.Context(), domain.MenuItem{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
		Status:      status,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMenuResponse(*item))
}

func (h MenuHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteMenuItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toMenuResponse(it domain.MenuItem) map[string]any {
	return map[string]any{
		"id":          it.ID,
		"name":        it.Name,
		"categoryId":  it.CategoryID,
		"price":       it.Price,
		"description": it.Description,
		"status":      string(it.Status),
		"orderCount":  it.OrderCount,
		"revenue":     it.Revenue,
	}
}

func toMenuResponses(items []domain.MenuItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, toMenuResponse(it))
	}
	return out
}
