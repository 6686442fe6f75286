package service

import (
	"context"

	"rent-ledger-backend/internal/domain"
)

type PropertyService interface {
	CreateProperty(ctx context.Context, owner domain.Owner, p *domain.Property) error
	GetProperty(ctx context.Context, owner domain.Owner, id string) (*domain.Property, error)
	ListProperties(ctx context.Context, owner domain.Owner) ([]domain.Property, error)
	UpdateProperty(ctx context.Context, owner domain.Owner, p *domain.Property) error
	DeleteProperty(ctx context.Context, owner domain.Owner, id string) error
}

type TenantService interface {
	CreateTenant(ctx context.Context, owner domain.Owner, t *domain.Tenant) error
	GetTenant(ctx context.Context, owner domain.Owner, id string) (*domain.Tenant, error)
	// ListTenants lists every tenant of the owner, or only those of propertyID when it is set.
	ListTenants(ctx context.Context, owner domain.Owner, propertyID string) ([]domain.Tenant, error)
	UpdateTenant(ctx context.Context, owner domain.Owner, t *domain.Tenant) error
	SetTenantActive(ctx context.Context, owner domain.Owner, id string, active bool) error
	DeleteTenant(ctx context.Context, owner domain.Owner, id string) error
}

type RentService interface {
	ReconcileProperty(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month) (int, error)
	ReconcileOwner(ctx context.Context, owner domain.Owner, month domain.Month) (int, error)
	// PropertyLedger returns a property's records and totals for month. With
	// reconcile set it first fills in missing records.
	PropertyLedger(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month, reconcile bool) (*domain.LedgerView, error)
	ListMonth(ctx context.Context, owner domain.Owner, month domain.Month) ([]domain.RentRecord, error)
	MarkPaid(ctx context.Context, owner domain.Owner, recordID string, c domain.PaymentConfirmation) (*domain.RentRecord, error)
	MarkPending(ctx context.Context, owner domain.Owner, recordID string) (*domain.RentRecord, error)
}

type ReportService interface {
	Dashboard(ctx context.Context, owner domain.Owner, month domain.Month) (*domain.DashboardStats, error)
	MonthlyReport(ctx context.Context, owner domain.Owner, month domain.Month) (*domain.MonthlyReport, error)
}

func requireOwner(owner domain.Owner) error {
	if !owner.Valid() {
		return domain.NewValidationError("owner", "is required")
	}
	return nil
}
