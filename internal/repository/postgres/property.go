package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/repository"
)

const propertyColumns = `id, owner_id, name, property_type, address, city, state, zip_code, notes, created_at, updated_at`

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	p.ID = uuid.NewString()
	query := `INSERT INTO properties (id, owner_id, name, property_type, address, city, state, zip_code, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()) RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, p.ID, p.OwnerID, p.Name, p.Type, p.Address, p.City, p.State, p.ZipCode, p.Notes).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	return classify("create property", err)
}

func (r *propertyRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1 AND owner_id = $2`
	p := &domain.Property{}
	err := scanProperty(r.db.QueryRowContext(ctx, query, id, ownerID), p)
	if err != nil {
		return nil, classify("get property", err)
	}
	return p, nil
}

func (r *propertyRepository) List(ctx context.Context, ownerID string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, classify("list properties", err)
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		var p domain.Property
		if err := scanProperty(rows, &p); err != nil {
			return nil, classify("list properties", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list properties", err)
	}
	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM properties WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, classify("count properties", err)
	}
	return count, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET name=$1, property_type=$2, address=$3, city=$4, state=$5, zip_code=$6, notes=$7, updated_at=NOW()
	          WHERE id=$8 AND owner_id=$9 RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Type, p.Address, p.City, p.State, p.ZipCode, p.Notes, p.ID, p.OwnerID).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	return classify("update property", err)
}

// Delete removes the property; tenants and rent records go with it via ON DELETE CASCADE.
func (r *propertyRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return classify("delete property", err)
	}
	return requireRow("delete property", res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner, p *domain.Property) error {
	return row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Type, &p.Address, &p.City, &p.State, &p.ZipCode, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
}
