package repository

import (
	"context"

	"rent-ledger-backend/internal/domain"
)

// Every method is scoped to ownerID. A row that exists but belongs to another
// owner is reported exactly like a missing row: domain.ErrNotFoundOrForbidden.

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Property, error)
	List(ctx context.Context, ownerID string) ([]domain.Property, error)
	Count(ctx context.Context, ownerID string) (int, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, ownerID, id string) error
}

type TenantRepository interface {
	Create(ctx context.Context, t *domain.Tenant) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Tenant, error)
	List(ctx context.Context, ownerID string) ([]domain.Tenant, error)
	ListByProperty(ctx context.Context, ownerID, propertyID string) ([]domain.Tenant, error)
	CountActive(ctx context.Context, ownerID string) (int, error)
	Update(ctx context.Context, t *domain.Tenant) error
	SetActive(ctx context.Context, ownerID, id string, active bool) error
	Delete(ctx context.Context, ownerID, id string) error
}

type RentRecordRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.RentRecord, error)
	ListByProperty(ctx context.Context, ownerID, propertyID string, month domain.Month) ([]domain.RentRecord, error)
	// ListByMonth returns the owner's records for month with Property and Tenant resolved.
	ListByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.RentRecord, error)
	// InsertBatch writes all records in a single statement; either all land or none do.
	InsertBatch(ctx context.Context, records []domain.RentRecord) error
	UpdateStatus(ctx context.Context, r *domain.RentRecord) error
}

// OwnerRepository enumerates owners for batch jobs that run outside a request.
type OwnerRepository interface {
	ListOwnerIDs(ctx context.Context) ([]string, error)
}
