package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/security"
)

// NewRouter registers every ledger route. Route names drive the auth
// middleware through config.EndpointSecurityConfig.
func NewRouter(h *Handler, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger.Get()))
	router.Use(NewAuthMiddleware(tm).Middleware)

	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet).Name(config.RouteHealth)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/properties", h.ListProperties).Methods(http.MethodGet).Name(config.RouteListProperties)
	api.HandleFunc("/properties", h.CreateProperty).Methods(http.MethodPost).Name(config.RouteCreateProperty)
	api.HandleFunc("/properties/{id}", h.GetProperty).Methods(http.MethodGet).Name(config.RouteGetProperty)
	api.HandleFunc("/properties/{id}", h.UpdateProperty).Methods(http.MethodPut).Name(config.RouteUpdateProperty)
	api.HandleFunc("/properties/{id}", h.DeleteProperty).Methods(http.MethodDelete).Name(config.RouteDeleteProperty)
	api.HandleFunc("/properties/{id}/months/{month}", h.PropertyLedger).Methods(http.MethodGet).Name(config.RoutePropertyLedger)
	api.HandleFunc("/properties/{id}/months/{month}/reconcile", h.ReconcilePropertyLedger).Methods(http.MethodPost).Name(config.RouteReconcileLedger)

	api.HandleFunc("/tenants", h.ListTenants).Methods(http.MethodGet).Name(config.RouteListTenants)
	api.HandleFunc("/tenants", h.CreateTenant).Methods(http.MethodPost).Name(config.RouteCreateTenant)
	api.HandleFunc("/tenants/{id}", h.GetTenant).Methods(http.MethodGet).Name(config.RouteGetTenant)
	api.HandleFunc("/tenants/{id}", h.UpdateTenant).Methods(http.MethodPut).Name(config.RouteUpdateTenant)
	api.HandleFunc("/tenants/{id}", h.DeleteTenant).Methods(http.MethodDelete).Name(config.RouteDeleteTenant)
	api.HandleFunc("/tenants/{id}/active", h.SetTenantActive).Methods(http.MethodPut).Name(config.RouteSetTenantActive)

	api.HandleFunc("/months/{month}/rent-records", h.ListMonth).Methods(http.MethodGet).Name(config.RouteListMonth)
	api.HandleFunc("/months/{month}/reconcile", h.ReconcileMonth).Methods(http.MethodPost).Name(config.RouteReconcileMonth)

	api.HandleFunc("/rent-records/{id}/paid", h.MarkPaid).Methods(http.MethodPost).Name(config.RouteMarkPaid)
	api.HandleFunc("/rent-records/{id}/pending", h.MarkPending).Methods(http.MethodPost).Name(config.RouteMarkPending)

	api.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet).Name(config.RouteDashboard)
	api.HandleFunc("/reports/monthly", h.MonthlyReport).Methods(http.MethodGet).Name(config.RouteMonthlyReport)

	return router
}
