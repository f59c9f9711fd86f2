package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"resto-backend/internal/domain"
	"resto-backend/internal/report"
	"resto-backend/internal/store"
)

type TableHandler struct {
	Store store.TableStore
}

func (h TableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/tables", h.list)
	r.Get("/tables/stats", h.stats)
	r.Post("/tables", h.create)
	r.Put("/tables/{id}", h.update)
	r.Delete("/tables/{id}", h.delete)
}

func (h TableHandler) list(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Store.ListTables(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, toTableResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h TableHandler) stats(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Store.ListTables(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s := report.TableStats(tables)
	byStatus := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[string(status)] = n
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":     s.Total,
		"byStatus":  byStatus,
		"occupancy": s.Occupancy,
	})
}

type tableRequest struct {
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

func (req tableRequest) validate() string {
	if req.Number < 1 {
		return "number must be positive"
	}
	if req.Capacity < 1 {
		return "capacity must be positive"
	}
	return ""
}

func (h TableHandler) create(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	status := domain.TableStatus(req.Status)
	if status == "" {
		status = domain.TableAvailable
	}
	t, err := h.Store.AddTable(r.Context(), domain.Table{Number: req.Number, Capacity: req.Capacity, Status: status})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTableResponse(*t))
}

func (h TableHandler) update(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	t, err := h.Store.UpdateTable(r.Context(), domain.Table{
		ID:       chi.URLParam(r, "id"),
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   domain.TableStatus(req.Status),
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTableResponse(*t))
}

func (h TableHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteTable(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toTableResponse(t domain.Table) map[string]any {
	return map[string]any{
		"id":       t.ID,
		"number":   t.Number,
		"capacity": t.Capacity,
		"status":   string(t.Status),
	}
}
