package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"resto-backend/internal/domain"
	"resto-backend/internal/report"
	"resto-backend/internal/store"
)

type CategoryHandler struct {
	Store interface {
		store.CategoryStore
		store.MenuStore
	}
}

func (h CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.list)
	r.Get("/categories/stats", h.stats)
	r.Post("/categories", h.create)
	r.Put("/categories/{id}", h.update)
	r.Delete("/categories/{id}", h.delete)
}

func (h CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListCategories(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, c := range items {
		resp = append(resp, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h CategoryHandler) stats(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListMenuItems(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	stats := report.Rollup(items, categories)
	resp := make([]map[string]any, 0, len(stats))
	for _, st := range stats {
		resp = append(resp, map[string]any{
			"id":           st.ID,
			"name":         st.Name,
			"isActive":     st.IsActive,
			"count":        st.Count,
			"totalOrders":  st.TotalOrders,
			"totalRevenue": st.TotalRevenue,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	id := domain.Slugify(req.Name)
	if id == "" || id == report.AllCategoryID {
		writeError(w, http.StatusBadRequest, "name does not produce a usable identifier")
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	c, err := h.Store.AddCategory(r.Context(), domain.Category{ID: id, Name: req.Name, IsActive: active})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// update renames or toggles a category; the slug identifier never changes,
// so existing menu items keep pointing at it.
func (h CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		IsActive bool   `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	c, err := h.Store.UpdateCategory(r.Context(), domain.Category{
		ID:       chi.URLParam(r, "id"),
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// delete refuses to remove a category that menu items still reference. The
// guard runs here, before the store mutation, so orphans can only appear via
// out-of-band edits.
func (h CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := h.Store.CountMenuItemsByCategory(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if n > 0 {
		writeError(w, http.StatusConflict, "category has menu items; move or delete them first")
		return
	}
	if err := h.Store.DeleteCategory(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toCategoryResponse(c domain.Category) map[string]any {
	return map[string]any{
		"id":       c.ID,
		"name":     c.Name,
		"isActive": c.IsActive,
	}
}
