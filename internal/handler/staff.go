package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"resto-backend/internal/domain"
	"resto-backend/internal/report"
	"resto-backend/internal/store"
)

type StaffHandler struct {
	Store store.StaffStore
}

func (h StaffHandler) RegisterRoutes(r chi.Router) {
	r.Get("/staff", h.list)
	r.Get("/staff/stats", h.stats)
	r.Post("/staff", h.create)
	r.Put("/staff/{id}", h.update)
	r.Delete("/staff/{id}", h.delete)
}

func (h StaffHandler) list(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Store.ListStaff(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(staff))
	for _, m := range staff {
		resp = append(resp, toStaffResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h StaffHandler) stats(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Store.ListStaff(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s := report.StaffStats(staff)
	byRole := make(map[string]int, len(s.ByRole))
	for role, n := range s.ByRole {
		byRole[string(role)] = n
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":        s.Total,
		"active":       s.Active,
		"byRole":       byRole,
		"totalPayroll": s.TotalPayroll,
	})
}

type staffRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Salary   float64 `json:"salary"`
	Status   string  `json:"status"`
	Shift    string  `json:"shift"`
	Password string  `json:"password"`
}

func (req staffRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Email == "" {
		return "email is required"
	}
	if req.Salary < 0 {
		return "salary must be non-negative"
	}
	switch domain.StaffRole(req.Role) {
	case domain.RoleAdmin, domain.RoleChef, domain.RoleCashier, domain.RoleWaiter:
	default:
		return "role must be admin, chef, cashier or waiter"
	}
	return ""
}

func (req staffRequest) toMember(id string) (domain.StaffMember, error) {
	m := domain.StaffMember{
		ID:     id,
		Name:   req.Name,
		Email:  strings.ToLower(req.Email),
		Role:   domain.StaffRole(req.Role),
		Salary: req.Salary,
		Status: domain.StaffStatus(req.Status),
		Shift:  domain.Shift(req.Shift),
	}
	if m.Status == "" {
		m.Status = domain.StaffActive
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return m, err
		}
		h := string(hash)
		m.PasswordHash = &h
	}
	return m, nil
}

func (h StaffHandler) create(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	member, err := req.toMember("")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	created, err := h.Store.AddStaff(r.Context(), member)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStaffResponse(*created))
}

func (h StaffHandler) update(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	member, err := req.toMember(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	updated, err := h.Store.UpdateStaff(r.Context(), member)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStaffResponse(*updated))
}

func (h StaffHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteStaff(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toStaffResponse(m domain.StaffMember) map[string]any {
	return map[string]any{
		"id":     m.ID,
		"name":   m.Name,
		"email":  m.Email,
		"role":   string(m.Role),
		"salary": m.Salary,
		"status": string(m.Status),
		"shift":  string(m.Shift),
	}
}
