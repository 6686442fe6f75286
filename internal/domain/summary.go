package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionSummary is the aggregate over a set of rent records.
type CollectionSummary struct {
	Expected       decimal.Decimal `json:"expected"`
	Collected      decimal.Decimal `json:"collected"`
	Pending        decimal.Decimal `json:"pending"`
	CollectionRate float64         `json:"collection_rate"`
	RecordCount    int             `json:"record_count"`
}

type DashboardStats struct {
	Month           Month             `json:"month"`
	TotalProperties int               `json:"total_properties"`
	ActiveTenants   int               `json:"active_tenants"`
	Collection      CollectionSummary `json:"collection"`
}

// LedgerView is a property's records for one month with their aggregate.
type LedgerView struct {
	PropertyID string            `json:"property_id"`
	Month      Month             `json:"month"`
	Created    int               `json:"created"`
	Records    []RentRecord      `json:"records"`
	Summary    CollectionSummary `json:"summary"`
}

type MonthlyReportLine struct {
	PropertyName  string          `json:"property_name"`
	TenantName    string          `json:"tenant_name"`
	Amount        decimal.Decimal `json:"amount"`
	Status        RentStatus      `json:"status"`
	PaidDate      *time.Time      `json:"paid_date"`
	PaymentMethod *PaymentMethod  `json:"payment_method"`
	Notes         *string         `json:"notes"`
}

type MonthlyReport struct {
	Month           Month               `json:"month"`
	TotalProperties int                 `json:"total_properties"`
	ActiveTenants   int                 `json:"active_tenants"`
	Summary         CollectionSummary   `json:"summary"`
	Lines           []MonthlyReportLine `json:"lines"`
}
