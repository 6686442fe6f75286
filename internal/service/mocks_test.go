package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rent-ledger-backend/internal/domain"
)

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Property, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) List(ctx context.Context, ownerID string) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Count(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTenantRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) List(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) ListByProperty(ctx context.Context, ownerID, propertyID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, ownerID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) CountActive(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}
func (m *MockTenantRepo) Update(ctx context.Context, t *domain.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTenantRepo) SetActive(ctx context.Context, ownerID, id string, active bool) error {
	args := m.Called(ctx, ownerID, id, active)
	return args.Error(0)
}
func (m *MockTenantRepo) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockRentRecordRepo
type MockRentRecordRepo struct {
	mock.Mock
}

func (m *MockRentRecordRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.RentRecord, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so the service's mutations do not leak into the fixture.
	rec := *args.Get(0).(*domain.RentRecord)
	return &rec, args.Error(1)
}
func (m *MockRentRecordRepo) ListByProperty(ctx context.Context, ownerID, propertyID string, month domain.Month) ([]domain.RentRecord, error) {
	args := m.Called(ctx, ownerID, propertyID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentRecord), args.Error(1)
}
func (m *MockRentRecordRepo) ListByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.RentRecord, error) {
	args := m.Called(ctx, ownerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentRecord), args.Error(1)
}
func (m *MockRentRecordRepo) InsertBatch(ctx context.Context, records []domain.RentRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}
func (m *MockRentRecordRepo) UpdateStatus(ctx context.Context, r *domain.RentRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
