package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rent-ledger-backend/internal/domain"
)

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) CreateProperty(ctx context.Context, owner domain.Owner, p *domain.Property) error {
	args := m.Called(ctx, owner, p)
	return args.Error(0)
}
func (m *MockPropertyService) GetProperty(ctx context.Context, owner domain.Owner, id string) (*domain.Property, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyService) ListProperties(ctx context.Context, owner domain.Owner) ([]domain.Property, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyService) UpdateProperty(ctx context.Context, owner domain.Owner, p *domain.Property) error {
	args := m.Called(ctx, owner, p)
	return args.Error(0)
}
func (m *MockPropertyService) DeleteProperty(ctx context.Context, owner domain.Owner, id string) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) CreateTenant(ctx context.Context, owner domain.Owner, t *domain.Tenant) error {
	args := m.Called(ctx, owner, t)
	return args.Error(0)
}
func (m *MockTenantService) GetTenant(ctx context.Context, owner domain.Owner, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) ListTenants(ctx context.Context, owner domain.Owner, propertyID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, owner, propertyID)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantService) UpdateTenant(ctx context.Context, owner domain.Owner, t *domain.Tenant) error {
	args := m.Called(ctx, owner, t)
	return args.Error(0)
}
func (m *MockTenantService) SetTenantActive(ctx context.Context, owner domain.Owner, id string, active bool) error {
	args := m.Called(ctx, owner, id, active)
	return args.Error(0)
}
func (m *MockTenantService) DeleteTenant(ctx context.Context, owner domain.Owner, id string) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

type MockRentService struct {
	mock.Mock
}

func (m *MockRentService) ReconcileProperty(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month) (int, error) {
	args := m.Called(ctx, owner, propertyID, month)
	return args.Int(0), args.Error(1)
}
func (m *MockRentService) ReconcileOwner(ctx context.Context, owner domain.Owner, month domain.Month) (int, error) {
	args := m.Called(ctx, owner, month)
	return args.Int(0), args.Error(1)
}
func (m *MockRentService) PropertyLedger(ctx context.Context, owner domain.Owner, propertyID string, month domain.Month, reconcile bool) (*domain.LedgerView, error) {
	args := m.Called(ctx, owner, propertyID, month, reconcile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerView), args.Error(1)
}
func (m *MockRentService) ListMonth(ctx context.Context, owner domain.Owner, month domain.Month) ([]domain.RentRecord, error) {
	args := m.Called(ctx, owner, month)
	return args.Get(0).([]domain.RentRecord), args.Error(1)
}
func (m *MockRentService) MarkPaid(ctx context.Context, owner domain.Owner, recordID string, c domain.PaymentConfirmation) (*domain.RentRecord, error) {
	args := m.Called(ctx, owner, recordID, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRecord), args.Error(1)
}
func (m *MockRentService) MarkPending(ctx context.Context, owner domain.Owner, recordID string) (*domain.RentRecord, error) {
	args := m.Called(ctx, owner, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRecord), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Dashboard(ctx context.Context, owner domain.Owner, month domain.Month) (*domain.DashboardStats, error) {
	args := m.Called(ctx, owner, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockReportService) MonthlyReport(ctx context.Context, owner domain.Owner, month domain.Month) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, owner, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
