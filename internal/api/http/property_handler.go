package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rent-ledger-backend/internal/domain"
)

type propertyRequest struct {
	Name         string              `json:"name"`
	PropertyType domain.PropertyType `json:"property_type"`
	Address      string              `json:"address"`
	City         *string             `json:"city"`
	State        *string             `json:"state"`
	ZipCode      *string             `json:"zip_code"`
	Notes        *string             `json:"notes"`
}

func (req propertyRequest) toDomain(id string) *domain.Property {
	return &domain.Property{
		ID:      id,
		Name:    req.Name,
		Type:    req.PropertyType,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Notes:   req.Notes,
	}
}

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	properties, err := h.properties.ListProperties(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	p := req.toDomain("")
	if err := h.properties.CreateProperty(r.Context(), owner, p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	p, err := h.properties.GetProperty(r.Context(), owner, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	p := req.toDomain(mux.Vars(r)["id"])
	if err := h.properties.UpdateProperty(r.Context(), owner, p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	if err := h.properties.DeleteProperty(r.Context(), owner, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PropertyLedger returns the month's records and totals without creating any.
func (h *Handler) PropertyLedger(w http.ResponseWriter, r *http.Request) {
	h.propertyLedger(w, r, false)
}

// ReconcilePropertyLedger creates missing records first, then returns the ledger.
func (h *Handler) ReconcilePropertyLedger(w http.ResponseWriter, r *http.Request) {
	h.propertyLedger(w, r, true)
}

func (h *Handler) propertyLedger(w http.ResponseWriter, r *http.Request, reconcile bool) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	month, err := pathMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := h.rent.PropertyLedger(r.Context(), owner, mux.Vars(r)["id"], month, reconcile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
