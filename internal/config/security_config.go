package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// Route names registered on the HTTP router.
const (
	RouteHealth = "health"

	RouteListProperties  = "properties.list"
	RouteCreateProperty  = "properties.create"
	RouteGetProperty     = "properties.get"
	RouteUpdateProperty  = "properties.update"
	RouteDeleteProperty  = "properties.delete"
	RoutePropertyLedger  = "properties.ledger"
	RouteReconcileLedger = "properties.reconcile"

	RouteListTenants     = "tenants.list"
	RouteCreateTenant    = "tenants.create"
	RouteGetTenant       = "tenants.get"
	RouteUpdateTenant    = "tenants.update"
	RouteDeleteTenant    = "tenants.delete"
	RouteSetTenantActive = "tenants.active"

	RouteListMonth      = "months.records"
	RouteReconcileMonth = "months.reconcile"

	RouteMarkPaid    = "records.paid"
	RouteMarkPending = "records.pending"

	RouteDashboard     = "reports.dashboard"
	RouteMonthlyReport = "reports.monthly"
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	RouteHealth: SecurityPublic,

	RouteListProperties:  SecurityAccess,
	RouteCreateProperty:  SecurityAccess,
	RouteGetProperty:     SecurityAccess,
	RouteUpdateProperty:  SecurityAccess,
	RouteDeleteProperty:  SecurityAccess,
	RoutePropertyLedger:  SecurityAccess,
	RouteReconcileLedger: SecurityAccess,

	RouteListTenants:     SecurityAccess,
	RouteCreateTenant:    SecurityAccess,
	RouteGetTenant:       SecurityAccess,
	RouteUpdateTenant:    SecurityAccess,
	RouteDeleteTenant:    SecurityAccess,
	RouteSetTenantActive: SecurityAccess,

	RouteListMonth:      SecurityAccess,
	RouteReconcileMonth: SecurityAccess,

	RouteMarkPaid:    SecurityAccess,
	RouteMarkPending: SecurityAccess,

	RouteDashboard:     SecurityAccess,
	RouteMonthlyReport: SecurityAccess,
}

// GetSecurityLevel returns the security level for a route. Unknown routes
// require an access token.
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityAccess
}
