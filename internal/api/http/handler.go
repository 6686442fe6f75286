package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/service"
)

// Pinger reports store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the ledger API on top of the service layer.
type Handler struct {
	properties service.PropertyService
	tenants    service.TenantService
	rent       service.RentService
	reports    service.ReportService
	store      Pinger
}

func NewHandler(
	properties service.PropertyService,
	tenants service.TenantService,
	rent service.RentService,
	reports service.ReportService,
	store Pinger,
) *Handler {
	return &Handler{
		properties: properties,
		tenants:    tenants,
		rent:       rent,
		reports:    reports,
		store:      store,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestOwner returns the owner set by AuthMiddleware, writing 401 when absent.
func requestOwner(w http.ResponseWriter, r *http.Request) (domain.Owner, bool) {
	owner, ok := OwnerFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
	}
	return owner, ok
}

func pathMonth(r *http.Request) (domain.Month, error) {
	m, err := domain.ParseMonth(mux.Vars(r)["month"])
	if err != nil {
		return domain.Month{}, domain.NewValidationError("month", err.Error())
	}
	return m, nil
}

// queryMonth reads ?month=, defaulting to the current month.
func queryMonth(r *http.Request) (domain.Month, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("month"))
	if raw == "" {
		return domain.CurrentMonth(), nil
	}
	m, err := domain.ParseMonth(raw)
	if err != nil {
		return domain.Month{}, domain.NewValidationError("month", err.Error())
	}
	return m, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp. A timestamp
// keeps the calendar day written in its own offset.
func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be YYYY-MM-DD")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
