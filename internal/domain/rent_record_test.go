package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRecord() RentRecord {
	m, _ := ParseMonth("2024-03")
	return NewPendingRecord(Tenant{
		ID:          "t1",
		OwnerID:     "o1",
		PropertyID:  "p1",
		MonthlyRent: decimal.NewFromInt(1500),
	}, m)
}

func TestNewPendingRecord(t *testing.T) {
	r := pendingRecord()
	assert.Equal(t, RentStatusPending, r.Status)
	assert.Equal(t, "t1", r.TenantID)
	assert.Equal(t, "p1", r.PropertyID)
	assert.Equal(t, "o1", r.OwnerID)
	assert.True(t, r.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Nil(t, r.PaidDate)
	assert.Nil(t, r.PaymentMethod)
}

func TestMarkPaid(t *testing.T) {
	paid := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		r := pendingRecord()
		err := r.MarkPaid(PaymentConfirmation{PaidDate: paid, PaymentMethod: PaymentMethodBankTransfer, Notes: "  ref 9  "})
		require.NoError(t, err)
		assert.Equal(t, RentStatusPaid, r.Status)
		require.NotNil(t, r.PaidDate)
		assert.Equal(t, paid, *r.PaidDate)
		require.NotNil(t, r.PaymentMethod)
		assert.Equal(t, PaymentMethodBankTransfer, *r.PaymentMethod)
		require.NotNil(t, r.Notes)
		assert.Equal(t, "ref 9", *r.Notes)
	})

	t.Run("BlankNotesStayNil", func(t *testing.T) {
		r := pendingRecord()
		require.NoError(t, r.MarkPaid(PaymentConfirmation{PaidDate: paid, PaymentMethod: PaymentMethodCash, Notes: "   "}))
		assert.Nil(t, r.Notes)
	})

	t.Run("MissingDate", func(t *testing.T) {
		r := pendingRecord()
		err := r.MarkPaid(PaymentConfirmation{PaymentMethod: PaymentMethodCash})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "paid_date", verr.Field)
		assert.Equal(t, RentStatusPending, r.Status)
	})

	t.Run("MissingMethod", func(t *testing.T) {
		r := pendingRecord()
		err := r.MarkPaid(PaymentConfirmation{PaidDate: paid})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "payment_method", verr.Field)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		r := pendingRecord()
		err := r.MarkPaid(PaymentConfirmation{PaidDate: paid, PaymentMethod: "crypto"})
		assert.True(t, IsValidation(err))
		assert.Equal(t, RentStatusPending, r.Status)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		r := pendingRecord()
		require.NoError(t, r.MarkPaid(PaymentConfirmation{PaidDate: paid, PaymentMethod: PaymentMethodCash}))
		err := r.MarkPaid(PaymentConfirmation{PaidDate: paid.AddDate(0, 0, 1), PaymentMethod: PaymentMethodUPI})
		assert.True(t, IsValidation(err))
		assert.Equal(t, paid, *r.PaidDate)
		assert.Equal(t, PaymentMethodCash, *r.PaymentMethod)
	})
}

func TestMarkPending_RoundTrip(t *testing.T) {
	r := pendingRecord()
	before := r

	require.NoError(t, r.MarkPaid(PaymentConfirmation{
		PaidDate:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		PaymentMethod: PaymentMethodCheck,
		Notes:         "cheque 101",
	}))
	r.MarkPending()

	assert.Equal(t, before, r)
}

func TestMarkPending_OnPendingIsNoop(t *testing.T) {
	r := pendingRecord()
	r.MarkPending()
	assert.Equal(t, RentStatusPending, r.Status)
	assert.Nil(t, r.PaidDate)
}
