package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/repository"
)

const tenantColumns = `id, owner_id, property_id, first_name, last_name, email, phone, monthly_rent,
	lease_start_date, lease_end_date, is_active, notes, created_at, updated_at`

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	t.ID = uuid.NewString()
	query := `INSERT INTO tenants (id, owner_id, property_id, first_name, last_name, email, phone, monthly_rent,
	          lease_start_date, lease_end_date, is_active, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()) RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, t.ID, t.OwnerID, t.PropertyID, t.FirstName, t.LastName, t.Email, t.Phone,
		t.MonthlyRent, t.LeaseStartDate, t.LeaseEndDate, t.IsActive, t.Notes).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	return classify("create tenant", err)
}

func (r *tenantRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1 AND owner_id = $2`
	t := &domain.Tenant{}
	if err := scanTenant(r.db.QueryRowContext(ctx, query, id, ownerID), t); err != nil {
		return nil, classify("get tenant", err)
	}
	return t, nil
}

func (r *tenantRepository) List(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.query(ctx, "list tenants", query, ownerID)
}

func (r *tenantRepository) ListByProperty(ctx context.Context, ownerID, propertyID string) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE property_id = $1 AND owner_id = $2 ORDER BY created_at DESC`
	return r.query(ctx, "list tenants by property", query, propertyID, ownerID)
}

func (r *tenantRepository) CountActive(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tenants WHERE owner_id = $1 AND is_active = true`, ownerID).Scan(&count)
	if err != nil {
		return 0, classify("count active tenants", err)
	}
	return count, nil
}

// Update rewrites the tenant row. Existing rent records keep the amount they were created with.
func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	query := `UPDATE tenants SET property_id=$1, first_name=$2, last_name=$3, email=$4, phone=$5, monthly_rent=$6,
	          lease_start_date=$7, lease_end_date=$8, is_active=$9, notes=$10, updated_at=NOW()
	          WHERE id=$11 AND owner_id=$12 RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, t.PropertyID, t.FirstName, t.LastName, t.Email, t.Phone, t.MonthlyRent,
		t.LeaseStartDate, t.LeaseEndDate, t.IsActive, t.Notes, t.ID, t.OwnerID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	return classify("update tenant", err)
}

func (r *tenantRepository) SetActive(ctx context.Context, ownerID, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tenants SET is_active=$1, updated_at=NOW() WHERE id=$2 AND owner_id=$3`, active, id, ownerID)
	if err != nil {
		return classify("set tenant active", err)
	}
	return requireRow("set tenant active", res)
}

func (r *tenantRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return classify("delete tenant", err)
	}
	return requireRow("delete tenant", res)
}

func (r *tenantRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Tenant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	tenants := []domain.Tenant{}
	for rows.Next() {
		var t domain.Tenant
		if err := scanTenant(rows, &t); err != nil {
			return nil, classify(op, err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return tenants, nil
}

func scanTenant(row rowScanner, t *domain.Tenant) error {
	return row.Scan(&t.ID, &t.OwnerID, &t.PropertyID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.MonthlyRent,
		&t.LeaseStartDate, &t.LeaseEndDate, &t.IsActive, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
}
