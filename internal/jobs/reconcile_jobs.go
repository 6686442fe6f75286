package jobs

import (
	"context"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/logger"
)

// ReconcileResult summarizes one owner-wide reconciliation pass.
type ReconcileResult struct {
	Owners  int
	Failed  int
	Created int
}

// ReconcileCurrentMonth creates the missing rent records of the current month
// for every owner.
func (jr *JobRunner) ReconcileCurrentMonth() {
	jr.runWithRecovery("ReconcileCurrentMonth", func() {
		month := domain.MonthOf(jr.now().UTC())
		res, err := jr.ReconcileMonth(context.Background(), month)
		if err != nil {
			logger.Error("Failed to list owners", "month", month.String(), "error", err)
			return
		}
		logger.Info("Reconciled rent records",
			"month", month.String(),
			"owners", res.Owners,
			"failed", res.Failed,
			"created", res.Created)
	})
}

// ReconcileMonth reconciles month for every owner with at least one property.
// A failing owner is logged and skipped; it is not retried until the next run.
func (jr *JobRunner) ReconcileMonth(ctx context.Context, month domain.Month) (ReconcileResult, error) {
	ownerIDs, err := jr.owners.ListOwnerIDs(ctx)
	if err != nil {
		return ReconcileResult{}, err
	}

	res := ReconcileResult{Owners: len(ownerIDs)}
	for _, id := range ownerIDs {
		created, err := jr.services.Rent.ReconcileOwner(ctx, domain.Owner{ID: id}, month)
		res.Created += created
		if err != nil {
			res.Failed++
			logger.WithOwner(id).Error("Owner reconciliation failed", "month", month.String(), "created", created, "error", err)
			continue
		}
		logger.Debug("Owner reconciled", "owner_id", id, "created", created)
	}
	return res, nil
}
