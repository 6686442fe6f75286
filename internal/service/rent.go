package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/ledger"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository"
)

type rentService struct {
	propertyRepo repository.PropertyRepository
	recordRepo   repository.RentRecordRepository
	reconciler   *ledger.Reconciler
	inflight     singleflight.Group
}

func NewRentService(
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	recordRepo repository.RentRecordRepository,
) RentService {
	return &rentService{
		propertyRepo: propertyRepo,
		recordRepo:   recordRepo,
		reconciler:   ledger.NewReconciler(tenantRepo, recordRepo),
	}
}

func (s *rentService) ReconcileProperty(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month) (int, error) {
	logger.EnterMethod("rentService.ReconcileProperty", "ownerID", owner.ID, "propertyID", propertyID, "month", month.String())
	if err := requireOwner(owner); err != nil {
		return 0, err
	}
	if month.IsZero() {
		return 0, domain.NewValidationError("month", "is required")
	}
	if _, err := s.propertyRepo.GetByID(ctx, owner.ID, propertyID); err != nil {
		logger.ExitMethodWithError("rentService.ReconcileProperty", err, "propertyID", propertyID)
		return 0, err
	}

	created, err := s.reconcile(ctx, owner, propertyID, month)
	if err != nil {
		logger.ExitMethodWithError("rentService.ReconcileProperty", err, "propertyID", propertyID)
		return 0, err
	}
	logger.ExitMethod("rentService.ReconcileProperty", "propertyID", propertyID, "created", created)
	return created, nil
}

// reconcile coalesces identical in-flight requests within this process. The
// shared run is detached from any single caller's cancellation; each caller
// waits on its own ctx and gets its own context error when it gives up. Across
// processes the store's unique constraint is what keeps records single.
func (s *rentService) reconcile(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month) (int, error) {
	key := owner.ID + "/" + propertyID + "/" + month.String()
	runCtx := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.reconciler.Reconcile(runCtx, owner, propertyID, month)
	})

	select {
	case <-ctx.Done():
		return 0, &domain.TransientStoreError{Op: "reconcile", Err: ctx.Err()}
	case res := <-ch:
		if res.Shared {
			logger.Debug("Joined in-flight reconciliation", "key", key)
		}
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int), nil
	}
}

// ReconcileOwner reconciles every property of the owner for month. It stops at
// the first property that fails and returns the records created up to that point.
func (s *rentService) ReconcileOwner(ctx context.Context, owner domain.Owner, month domain.Month) (int, error) {
	logger.EnterMethod("rentService.ReconcileOwner", "ownerID", owner.ID, "month", month.String())
	if err := requireOwner(owner); err != nil {
		return 0, err
	}
	if month.IsZero() {
		return 0, domain.NewValidationError("month", "is required")
	}

	properties, err := s.propertyRepo.List(ctx, owner.ID)
	if err != nil {
		logger.ExitMethodWithError("rentService.ReconcileOwner", err, "ownerID", owner.ID)
		return 0, err
	}

	total := 0
	for _, p := range properties {
		created, err := s.reconcile(ctx, owner, p.ID, month)
		if err != nil {
			logger.ExitMethodWithError("rentService.ReconcileOwner", err, "propertyID", p.ID, "created", total)
			return total, fmt.Errorf("property %s: %w", p.ID, err)
		}
		total += created
	}

	logger.ExitMethod("rentService.ReconcileOwner", "ownerID", owner.ID, "properties", len(properties), "created", total)
	return total, nil
}

func (s *rentService) PropertyLedger(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month, reconcile bool) (*domain.LedgerView, error) {
	logger.EnterMethod("rentService.PropertyLedger", "ownerID", owner.ID, "propertyID", propertyID, "month", month.String(), "reconcile", reconcile)
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, domain.NewValidationError("month", "is required")
	}
	if _, err := s.propertyRepo.GetByID(ctx, owner.ID, propertyID); err != nil {
		logger.ExitMethodWithError("rentService.PropertyLedger", err, "propertyID", propertyID)
		return nil, err
	}

	view := &domain.LedgerView{PropertyID: propertyID, Month: month}
	if reconcile {
		created, err := s.reconcile(ctx, owner, propertyID, month)
		if err != nil {
			logger.ExitMethodWithError("rentService.PropertyLedger", err, "propertyID", propertyID)
			return nil, err
		}
		view.Created = created
	}

	records, err := s.recordRepo.ListByProperty(ctx, owner.ID, propertyID, month)
	if err != nil {
		logger.ExitMethodWithError("rentService.PropertyLedger", err, "propertyID", propertyID)
		return nil, err
	}
	view.Records = records
	view.Summary = ledger.Aggregate(records)

	logger.ExitMethod("rentService.PropertyLedger", "propertyID", propertyID, "records", len(records), "created", view.Created)
	return view, nil
}

func (s *rentService) ListMonth(ctx context.Context, owner domain.Owner, month domain.Month) ([]domain.RentRecord, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, domain.NewValidationError("month", "is required")
	}
	return s.recordRepo.ListByMonth(ctx, owner.ID, month)
}

func (s *rentService) MarkPaid(ctx context.Context, owner domain.Owner, recordID string, c domain.PaymentConfirmation) (*domain.RentRecord, error) {
	logger.EnterMethod("rentService.MarkPaid", "ownerID", owner.ID, "recordID", recordID, "method", c.PaymentMethod)
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.recordRepo.GetByID(ctx, owner.ID, recordID)
	if err != nil {
		logger.ExitMethodWithError("rentService.MarkPaid", err, "recordID", recordID)
		return nil, err
	}
	if err := rec.MarkPaid(c); err != nil {
		logger.ExitMethodWithError("rentService.MarkPaid", err, "recordID", recordID)
		return nil, err
	}
	if err := s.recordRepo.UpdateStatus(ctx, rec); err != nil {
		logger.ExitMethodWithError("rentService.MarkPaid", err, "recordID", recordID)
		return nil, err
	}

	logger.ExitMethod("rentService.MarkPaid", "recordID", recordID)
	return rec, nil
}

// MarkPending reverts a record to pending. The previous payment details are
// discarded; nothing records who confirmed them.
func (s *rentService) MarkPending(ctx context.Context, owner domain.Owner, recordID string) (*domain.RentRecord, error) {
	logger.EnterMethod("rentService.MarkPending", "ownerID", owner.ID, "recordID", recordID)
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	rec, err := s.recordRepo.GetByID(ctx, owner.ID, recordID)
	if err != nil {
		logger.ExitMethodWithError("rentService.MarkPending", err, "recordID", recordID)
		return nil, err
	}
	rec.MarkPending()
	if err := s.recordRepo.UpdateStatus(ctx, rec); err != nil {
		logger.ExitMethodWithError("rentService.MarkPending", err, "recordID", recordID)
		return nil, err
	}

	logger.ExitMethod("rentService.MarkPending", "recordID", recordID)
	return rec, nil
}
