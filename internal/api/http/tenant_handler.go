package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"rent-ledger-backend/internal/domain"
)

type tenantRequest struct {
	PropertyID     string           `json:"property_id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          *string          `json:"email"`
	Phone          string           `json:"phone"`
	MonthlyRent    *decimal.Decimal `json:"monthly_rent"`
	LeaseStartDate string           `json:"lease_start_date"`
	LeaseEndDate   *string          `json:"lease_end_date"`
	IsActive       *bool            `json:"is_active"`
	Notes          *string          `json:"notes"`
}

// toDomain converts the request. An omitted is_active takes defaultActive.
func (req tenantRequest) toDomain(id string, defaultActive bool) (*domain.Tenant, error) {
	if req.MonthlyRent == nil {
		return nil, domain.NewValidationError("monthly_rent", "is required")
	}
	start, err := parseDate("lease_start_date", req.LeaseStartDate)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if req.LeaseEndDate != nil && strings.TrimSpace(*req.LeaseEndDate) != "" {
		e, err := parseDate("lease_end_date", *req.LeaseEndDate)
		if err != nil {
			return nil, err
		}
		end = &e
	}
	active := defaultActive
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &domain.Tenant{
		ID:             id,
		PropertyID:     req.PropertyID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		MonthlyRent:    *req.MonthlyRent,
		LeaseStartDate: start,
		LeaseEndDate:   end,
		IsActive:       active,
		Notes:          req.Notes,
	}, nil
}

type tenantActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	tenants, err := h.tenants.ListTenants(r.Context(), owner, r.URL.Query().Get("property_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	var req tenantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	t, err := req.toDomain("", true)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.tenants.CreateTenant(r.Context(), owner, t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	t, err := h.tenants.GetTenant(r.Context(), owner, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	var req tenantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	t, err := req.toDomain(mux.Vars(r)["id"], false)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.IsActive == nil {
		// A full update that leaves is_active out keeps the stored flag.
		current, err := h.tenants.GetTenant(r.Context(), owner, t.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		t.IsActive = current.IsActive
	}
	if err := h.tenants.UpdateTenant(r.Context(), owner, t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) SetTenantActive(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	var req tenantActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.IsActive == nil {
		writeError(w, domain.NewValidationError("is_active", "is required"))
		return
	}
	id := mux.Vars(r)["id"]
	if err := h.tenants.SetTenantActive(r.Context(), owner, id, *req.IsActive); err != nil {
		writeError(w, err)
		return
	}
	t, err := h.tenants.GetTenant(r.Context(), owner, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(w, r)
	if !ok {
		return
	}
	if err := h.tenants.DeleteTenant(r.Context(), owner, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
