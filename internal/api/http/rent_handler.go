package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rent-ledger-backend/internal/domain"
)

type paymentRequest struct {
	PaidDate      string               `json:"paid_date"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes"`
}

type reconcileResponse struct {
	Month   domain.Month `json:"month"`
	Created int          `json:"created"`
}

func (h *Handler) ListMonth(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	month, err := pathMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	records, err := h.rent.ListMonth(r.Context(), owner, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// ReconcileMonth reconciles every property of the owner. On partial failure the
// error is returned and records already created stay in place.
func (h *Handler) ReconcileMonth(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	month, err := pathMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := h.rent.ReconcileOwner(r.Context(), owner, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reconcileResponse{Month: month, Created: created})
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	paidDate, err := parseDate("paid_date", req.PaidDate)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.rent.MarkPaid(r.Context(), owner, mux.Vars(r)["id"], domain.PaymentConfirmation{
		PaidDate:      paidDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) MarkPending(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	rec, err := h.rent.MarkPending(r.Context(), owner, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
