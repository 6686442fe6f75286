package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFoundOrForbidden covers both a missing entity and one owned by someone else.
	// The two cases are deliberately indistinguishable to callers.
	ErrNotFoundOrForbidden = errors.New("not found")

	// ErrDuplicateRentRecord is reported when the store rejects a second record
	// for the same tenant and month.
	ErrDuplicateRentRecord = errors.New("rent record already exists for tenant and month")
)

// ValidationError is returned for malformed or missing input, before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// TransientStoreError wraps a network or store failure. It is surfaced to the
// caller as-is and never retried.
type TransientStoreError struct {
	Op  string
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *TransientStoreError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsTransient(err error) bool {
	var te *TransientStoreError
	return errors.As(err, &te)
}
