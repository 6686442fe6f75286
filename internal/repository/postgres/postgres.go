package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/repository"
)

// Store bundles the Ledger Store repositories over one connection pool.
type Store struct {
	db *sql.DB
	repository.PropertyRepository
	repository.TenantRepository
	repository.RentRecordRepository
	repository.OwnerRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		PropertyRepository:   NewPropertyRepository(db),
		TenantRepository:     NewTenantRepository(db),
		RentRecordRepository: NewRentRecordRepository(db),
		OwnerRepository:      NewOwnerRepository(db),
	}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &domain.TransientStoreError{Op: "ping", Err: err}
	}
	return nil
}

const (
	pqUniqueViolation      = "23505"
	pqForeignKeyViolation  = "23503"
	pqInvalidTextRepr      = "22P02"
	rentRecordUniqueTarget = "rent_records_tenant_month_key"
)

// classify maps driver errors onto the domain taxonomy.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFoundOrForbidden
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			if pqErr.Constraint == rentRecordUniqueTarget {
				return &domain.TransientStoreError{Op: op, Err: domain.ErrDuplicateRentRecord}
			}
		case pqForeignKeyViolation, pqInvalidTextRepr:
			// Unknown parent row or a malformed UUID: both look like "not yours".
			return domain.ErrNotFoundOrForbidden
		}
	}
	return &domain.TransientStoreError{Op: op, Err: err}
}

// requireRow turns a zero-row write into ErrNotFoundOrForbidden.
func requireRow(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return domain.ErrNotFoundOrForbidden
	}
	return nil
}
