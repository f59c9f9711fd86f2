package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"resto-backend/internal/domain"
	"resto-backend/internal/store"
)

type PaymentHandler struct {
	Store store.PaymentStore
}

func (h PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/payments", h.list)
	r.Post("/payments", h.create)
}

func (h PaymentHandler) list(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, toPaymentResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PaymentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date         string  `json:"date"`
		Time         string  `json:"time"`
		Amount       float64 `json:"amount"`
		Method       string  `json:"method"`
		TableID      *string `json:"tableId"`
		CustomerName *string `json:"customerName"`
		Reference    *string `json:"reference"`
		Status       string  `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	method := domain.PaymentMethod(req.Method)
	if method != domain.MethodCash && method != domain.MethodCard {
		writeError(w, http.StatusBadRequest, "method must be cash or card")
		return
	}
	if method == domain.MethodCard && (req.Reference == nil || *req.Reference == "") {
		writeError(w, http.StatusBadRequest, "reference is required for card payments")
		return
	}

	now := time.Now()
	if req.Date == "" {
		req.Date = now.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	if req.Time == "" {
		req.Time = now.Format("15:04")
	}
	status := domain.PaymentStatus(req.Status)
	if status == "" {
		status = domain.PaymentCompleted
	}

	p, err := h.Store.AddPayment(r.Context(), domain.Payment{
		Date:         req.Date,
		Time:         req.Time,
		Amount:       req.Amount,
		Method:       method,
		TableID:      req.TableID,
		CustomerName: req.CustomerName,
		Reference:    req.Reference,
		Status:       status,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(*p))
}

func toPaymentResponse(p domain.Payment) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"date":         p.Date,
		"time":         p.Time,
		"amount":       p.Amount,
		"method":       string(p.Method),
		"tableId":      p.TableID,
		"customerName": p.CustomerName,
		"reference":    p.Reference,
		"status":       string(p.Status),
	}
}
