// Package ledger holds the rent ledger's two procedures: the Reconciler, which
// makes sure every active tenant has a record for a month, and Aggregate,
// which totals a month's records.
package ledger

import (
	"context"
	"fmt"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository"
)

type Reconciler struct {
	tenants repository.TenantRepository
	records repository.RentRecordRepository
}

func NewReconciler(tenants repository.TenantRepository, records repository.RentRecordRepository) *Reconciler {
	return &Reconciler{tenants: tenants, records: records}
}

// Reconcile creates a pending record for each active tenant of the property that
// has none for month, and returns how many it created. Running it again for the
// same property and month creates nothing.
//
// Two concurrent calls may both see a tenant as missing; the store's unique
// (tenant_id, month) constraint rejects the second batch, which surfaces as a
// TransientStoreError wrapping domain.ErrDuplicateRentRecord.
func (r *Reconciler) Reconcile(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month) (int, error) {
	logger.EnterMethod("Reconciler.Reconcile", "ownerID", owner.ID, "propertyID", propertyID, "month", month.String())

	if !owner.Valid() {
		return 0, domain.NewValidationError("owner", "is required")
	}
	if propertyID == "" {
		return 0, domain.NewValidationError("property_id", "is required")
	}
	if month.IsZero() {
		return 0, domain.NewValidationError("month", "is required")
	}

	tenants, err := r.tenants.ListByProperty(ctx, owner.ID, propertyID)
	if err != nil {
		logger.ExitMethodWithError("Reconciler.Reconcile", err, "propertyID", propertyID)
		return 0, fmt.Errorf("list tenants: %w", err)
	}

	existing, err := r.records.ListByProperty(ctx, owner.ID, propertyID, month)
	if err != nil {
		logger.ExitMethodWithError("Reconciler.Reconcile", err, "propertyID", propertyID)
		return 0, fmt.Errorf("list rent records: %w", err)
	}

	missing := MissingRecords(owner, tenants, existing, month)
	if len(missing) == 0 {
		logger.ExitMethod("Reconciler.Reconcile", "propertyID", propertyID, "created", 0)
		return 0, nil
	}

	if err := r.records.InsertBatch(ctx, missing); err != nil {
		logger.ExitMethodWithError("Reconciler.Reconcile", err, "propertyID", propertyID, "candidates", len(missing))
		return 0, fmt.Errorf("insert rent records: %w", err)
	}

	logger.ExitMethod("Reconciler.Reconcile", "propertyID", propertyID, "created", len(missing))
	return len(missing), nil
}

// MissingRecords returns a new pending record for every active tenant whose id
// does not appear among existing. Inactive tenants never get one.
func MissingRecords(owner domain.Owner, tenants []domain.Tenant, existing []domain.RentRecord, month domain.Month) []domain.RentRecord {
	have := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		have[rec.TenantID] = struct{}{}
	}

	var missing []domain.RentRecord
	for _, t := range tenants {
		if !t.IsActive {
			continue
		}
		if _, ok := have[t.ID]; ok {
			continue
		}
		rec := domain.NewPendingRecord(t, month)
		rec.OwnerID = owner.ID
		missing = append(missing, rec)
		// A tenant listed twice must still yield one record.
		have[t.ID] = struct{}{}
	}
	return missing
}
