package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Tenant struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	PropertyID     string          `json:"property_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          *string         `json:"email"`
	Phone          string          `json:"phone"`
	MonthlyRent    decimal.Decimal `json:"monthly_rent"`
	LeaseStartDate time.Time       `json:"lease_start_date"`
	LeaseEndDate   *time.Time      `json:"lease_end_date"`
	IsActive       bool            `json:"is_active"`
	Notes          *string         `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// FullName joins first and last name, dropping whichever is empty.
func (t *Tenant) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

func (t *Tenant) Validate() error {
	t.FirstName = strings.TrimSpace(t.FirstName)
	t.LastName = strings.TrimSpace(t.LastName)
	t.Phone = strings.TrimSpace(t.Phone)
	if t.PropertyID == "" {
		return NewValidationError("property_id", "is required")
	}
	if t.FirstName == "" {
		return NewValidationError("first_name", "is required")
	}
	if t.LastName == "" {
		return NewValidationError("last_name", "is required")
	}
	if t.Phone == "" {
		return NewValidationError("phone", "is required")
	}
	if t.MonthlyRent.IsNegative() {
		return NewValidationError("monthly_rent", "must not be negative")
	}
	if t.LeaseStartDate.IsZero() {
		return NewValidationError("lease_start_date", "is required")
	}
	if t.LeaseEndDate != nil && t.LeaseEndDate.Before(t.LeaseStartDate) {
		return NewValidationError("lease_end_date", "must not be before lease_start_date")
	}
	return nil
}
