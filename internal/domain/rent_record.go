package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type RentStatus string

const (
	RentStatusPending RentStatus = "pending"
	RentStatusPaid    RentStatus = "paid"
	// RentStatusOverdue is accepted by the schema but never assigned.
	RentStatusOverdue RentStatus = "overdue"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}

// RentRecord is the amount owed by one tenant for one month. Amount is fixed at
// creation and does not follow later changes to the tenant's monthly rent.
type RentRecord struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	PropertyID    string          `json:"property_id"`
	TenantID      string          `json:"tenant_id"`
	Month         Month           `json:"month"`
	Amount        decimal.Decimal `json:"amount"`
	Status        RentStatus      `json:"status"`
	PaidDate      *time.Time      `json:"paid_date"`
	PaymentMethod *PaymentMethod  `json:"payment_method"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Resolved by queries that join the owning rows; nil otherwise.
	Property *Property `json:"property,omitempty"`
	Tenant   *Tenant   `json:"tenant,omitempty"`
}

// NewPendingRecord builds the record the reconciler inserts for a tenant lacking one.
func NewPendingRecord(tenant Tenant, month Month) RentRecord {
	return RentRecord{
		OwnerID:    tenant.OwnerID,
		PropertyID: tenant.PropertyID,
		TenantID:   tenant.ID,
		Month:      month,
		Amount:     tenant.MonthlyRent,
		Status:     RentStatusPending,
	}
}

// PaymentConfirmation carries the fields required to move a record to paid.
type PaymentConfirmation struct {
	PaidDate      time.Time     `json:"paid_date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes"`
}

func (c PaymentConfirmation) Validate() error {
	if c.PaidDate.IsZero() {
		return NewValidationError("paid_date", "is required")
	}
	if c.PaymentMethod == "" {
		return NewValidationError("payment_method", "is required")
	}
	if !c.PaymentMethod.Valid() {
		return NewValidationError("payment_method", "must be one of cash, check, bank_transfer, upi, other")
	}
	return nil
}

// MarkPaid applies a confirmation to a pending record.
func (r *RentRecord) MarkPaid(c PaymentConfirmation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if r.Status == RentStatusPaid {
		return NewValidationError("status", "rent record is already paid")
	}
	paid := c.PaidDate
	method := c.PaymentMethod
	r.Status = RentStatusPaid
	r.PaidDate = &paid
	r.PaymentMethod = &method
	r.Notes = nil
	if notes := strings.TrimSpace(c.Notes); notes != "" {
		r.Notes = &notes
	}
	return nil
}

// MarkPending reverts a record unconditionally and drops the payment details.
func (r *RentRecord) MarkPending() {
	r.Status = RentStatusPending
	r.PaidDate = nil
	r.PaymentMethod = nil
	r.Notes = nil
}
