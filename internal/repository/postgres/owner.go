package postgres

import (
	"context"
	"database/sql"

	"rent-ledger-backend/internal/repository"
)

type ownerRepository struct {
	db *sql.DB
}

func NewOwnerRepository(db *sql.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// ListOwnerIDs returns every owner that has at least one property.
func (r *ownerRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT owner_id FROM properties ORDER BY owner_id`)
	if err != nil {
		return nil, classify("list owners", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, classify("list owners", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list owners", err)
	}
	return ids, nil
}
