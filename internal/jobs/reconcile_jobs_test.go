package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/domain"
)

type MockOwnerRepo struct {
	mock.Mock
}

func (m *MockOwnerRepo) ListOwnerIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
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
	return args.Get(0).(*domain.LedgerView), args.Error(1)
}
func (m *MockRentService) ListMonth(ctx context.Context, owner domain.Owner, month domain.Month) ([]domain.RentRecord, error) {
	args := m.Called(ctx, owner, month)
	return args.Get(0).([]domain.RentRecord), args.Error(1)
}
func (m *MockRentService) MarkPaid(ctx context.Context, owner domain.Owner, recordID string, c domain.PaymentConfirmation) (*domain.RentRecord, error) {
	args := m.Called(ctx, owner, recordID, c)
	return args.Get(0).(*domain.RentRecord), args.Error(1)
}
func (m *MockRentService) MarkPending(ctx context.Context, owner domain.Owner, recordID string) (*domain.RentRecord, error) {
	args := m.Called(ctx, owner, recordID)
	return args.Get(0).(*domain.RentRecord), args.Error(1)
}

func TestReconcileMonth(t *testing.T) {
	ctx := context.Background()
	month := domain.MonthOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	t.Run("SkipsFailingOwner", func(t *testing.T) {
		owners := new(MockOwnerRepo)
		rent := new(MockRentService)
		jr := NewJobRunner(owners, &Services{Rent: rent}, &config.Config{})

		owners.On("ListOwnerIDs", ctx).Return([]string{"a", "b", "c"}, nil)
		rent.On("ReconcileOwner", ctx, domain.Owner{ID: "a"}, month).Return(2, nil)
		rent.On("ReconcileOwner", ctx, domain.Owner{ID: "b"}, month).Return(1, errors.New("store down"))
		rent.On("ReconcileOwner", ctx, domain.Owner{ID: "c"}, month).Return(4, nil)

		res, err := jr.ReconcileMonth(ctx, month)
		require.NoError(t, err)
		assert.Equal(t, ReconcileResult{Owners: 3, Failed: 1, Created: 7}, res)
		rent.AssertExpectations(t)
	})

	t.Run("ListOwnersFails", func(t *testing.T) {
		owners := new(MockOwnerRepo)
		rent := new(MockRentService)
		jr := NewJobRunner(owners, &Services{Rent: rent}, &config.Config{})

		owners.On("ListOwnerIDs", ctx).Return(nil, errors.New("store down"))

		_, err := jr.ReconcileMonth(ctx, month)
		assert.Error(t, err)
		rent.AssertNotCalled(t, "ReconcileOwner", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReconcileCurrentMonth_UsesClock(t *testing.T) {
	owners := new(MockOwnerRepo)
	rent := new(MockRentService)
	jr := NewJobRunner(owners, &Services{Rent: rent}, &config.Config{})
	jr.now = func() time.Time { return time.Date(2024, 7, 19, 13, 0, 0, 0, time.UTC) }

	july := domain.MonthOf(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	owners.On("ListOwnerIDs", mock.Anything).Return([]string{"a"}, nil)
	rent.On("ReconcileOwner", mock.Anything, domain.Owner{ID: "a"}, july).Return(3, nil)

	jr.ReconcileCurrentMonth()
	rent.AssertExpectations(t)
}

func TestRunWithRecovery(t *testing.T) {
	jr := NewJobRunner(new(MockOwnerRepo), &Services{}, &config.Config{})
	assert.NotPanics(t, func() {
		jr.runWithRecovery("panicky", func() { panic("boom") })
	})
}
