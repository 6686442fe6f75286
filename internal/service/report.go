package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/ledger"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository"
)

type reportService struct {
	propertyRepo repository.PropertyRepository
	tenantRepo   repository.TenantRepository
	recordRepo   repository.RentRecordRepository
}

func NewReportService(
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	recordRepo repository.RentRecordRepository,
) ReportService {
	return &reportService{
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		recordRepo:   recordRepo,
	}
}

type monthSnapshot struct {
	properties int
	tenants    int
	records    []domain.RentRecord
}

// snapshot reads the three independent inputs of a month's figures concurrently.
func (s *reportService) snapshot(ctx context.Context, owner domain.Owner, month domain.Month) (*monthSnapshot, error) {
	snap := &monthSnapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.propertyRepo.Count(gctx, owner.ID)
		snap.properties = n
		return err
	})
	g.Go(func() error {
		n, err := s.tenantRepo.CountActive(gctx, owner.ID)
		snap.tenants = n
		return err
	})
	g.Go(func() error {
		records, err := s.recordRepo.ListByMonth(gctx, owner.ID, month)
		snap.records = records
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *reportService) Dashboard(ctx context.Context, owner domain.Owner, month domain.Month) (*domain.DashboardStats, error) {
	logger.EnterMethod("reportService.Dashboard", "ownerID", owner.ID, "month", month.String())
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, domain.NewValidationError("month", "is required")
	}

	snap, err := s.snapshot(ctx, owner, month)
	if err != nil {
		logger.ExitMethodWithError("reportService.Dashboard", err, "ownerID", owner.ID)
		return nil, err
	}

	stats := &domain.DashboardStats{
		Month:           month,
		TotalProperties: snap.properties,
		ActiveTenants:   snap.tenants,
		Collection:      ledger.Aggregate(snap.records),
	}
	logger.ExitMethod("reportService.Dashboard", "ownerID", owner.ID, "records", len(snap.records))
	return stats, nil
}

func (s *reportService) MonthlyReport(ctx context.Context, owner domain.Owner, month domain.Month) (*domain.MonthlyReport, error) {
	logger.EnterMethod("reportService.MonthlyReport", "ownerID", owner.ID, "month", month.String())
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, domain.NewValidationError("month", "is required")
	}

	snap, err := s.snapshot(ctx, owner, month)
	if err != nil {
		logger.ExitMethodWithError("reportService.MonthlyReport", err, "ownerID", owner.ID)
		return nil, err
	}

	report := &domain.MonthlyReport{
		Month:           month,
		TotalProperties: snap.properties,
		ActiveTenants:   snap.tenants,
		Summary:         ledger.Aggregate(snap.records),
		Lines:           make([]domain.MonthlyReportLine, 0, len(snap.records)),
	}
	for _, r := range snap.records {
		report.Lines = append(report.Lines, reportLine(r))
	}

	logger.ExitMethod("reportService.MonthlyReport", "ownerID", owner.ID, "lines", len(report.Lines))
	return report, nil
}

func reportLine(r domain.RentRecord) domain.MonthlyReportLine {
	line := domain.MonthlyReportLine{
		PropertyName:  "N/A",
		TenantName:    "N/A",
		Amount:        r.Amount,
		Status:        r.Status,
		PaidDate:      r.PaidDate,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
	if r.Property != nil && r.Property.Name != "" {
		line.PropertyName = r.Property.Name
	}
	if r.Tenant != nil {
		if name := r.Tenant.FullName(); name != "" {
			line.TenantName = name
		}
	}
	return line
}
