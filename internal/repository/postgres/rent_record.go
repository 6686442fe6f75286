package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository"
)

const rentRecordColumns = `r.id, r.owner_id, r.property_id, r.tenant_id, r.month, r.amount, r.status,
	r.paid_date, r.payment_method, r.notes, r.created_at, r.updated_at`

// rentRecordInsertColumns is the per-row arity of InsertBatch placeholders.
const rentRecordInsertColumns = 7

type rentRecordRepository struct {
	db *sql.DB
}

func NewRentRecordRepository(db *sql.DB) repository.RentRecordRepository {
	return &rentRecordRepository{db: db}
}

func (r *rentRecordRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.RentRecord, error) {
	query := `SELECT ` + rentRecordColumns + ` FROM rent_records r WHERE r.id = $1 AND r.owner_id = $2`
	rec := &domain.RentRecord{}
	if err := scanRentRecord(r.db.QueryRowContext(ctx, query, id, ownerID), rec); err != nil {
		return nil, classify("get rent record", err)
	}
	return rec, nil
}

func (r *rentRecordRepository) ListByProperty(ctx context.Context, ownerID, propertyID string, month domain.Month) ([]domain.RentRecord, error) {
	query := `SELECT ` + rentRecordColumns + `, t.first_name, t.last_name, t.phone, t.monthly_rent, t.is_active
	          FROM rent_records r
	          JOIN tenants t ON t.id = r.tenant_id
	          WHERE r.property_id = $1 AND r.owner_id = $2 AND r.month = $3
	          ORDER BY r.status DESC, r.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, propertyID, ownerID, month)
	if err != nil {
		return nil, classify("list rent records by property", err)
	}
	defer rows.Close()

	records := []domain.RentRecord{}
	for rows.Next() {
		var rec domain.RentRecord
		t := &domain.Tenant{}
		dest := append(rentRecordDest(&rec), &t.FirstName, &t.LastName, &t.Phone, &t.MonthlyRent, &t.IsActive)
		if err := rows.Scan(dest...); err != nil {
			return nil, classify("list rent records by property", err)
		}
		t.ID, t.OwnerID, t.PropertyID = rec.TenantID, rec.OwnerID, rec.PropertyID
		rec.Tenant = t
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list rent records by property", err)
	}
	return records, nil
}

func (r *rentRecordRepository) ListByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.RentRecord, error) {
	query := `SELECT ` + rentRecordColumns + `,
	                 p.name, p.property_type, p.address,
	                 t.first_name, t.last_name, t.phone, t.monthly_rent, t.is_active
	          FROM rent_records r
	          JOIN properties p ON p.id = r.property_id
	          JOIN tenants t ON t.id = r.tenant_id
	          WHERE r.owner_id = $1 AND r.month = $2
	          ORDER BY r.status DESC, r.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID, month)
	if err != nil {
		return nil, classify("list rent records by month", err)
	}
	defer rows.Close()

	records := []domain.RentRecord{}
	for rows.Next() {
		var rec domain.RentRecord
		p := &domain.Property{}
		t := &domain.Tenant{}
		dest := append(rentRecordDest(&rec),
			&p.Name, &p.Type, &p.Address,
			&t.FirstName, &t.LastName, &t.Phone, &t.MonthlyRent, &t.IsActive)
		if err := rows.Scan(dest...); err != nil {
			return nil, classify("list rent records by month", err)
		}
		p.ID, p.OwnerID = rec.PropertyID, rec.OwnerID
		t.ID, t.OwnerID, t.PropertyID = rec.TenantID, rec.OwnerID, rec.PropertyID
		rec.Property = p
		rec.Tenant = t
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list rent records by month", err)
	}
	return records, nil
}

// InsertBatch assigns IDs and writes every record in one INSERT. A unique
// violation on (tenant_id, month) rejects the whole statement.
func (r *rentRecordRepository) InsertBatch(ctx context.Context, records []domain.RentRecord) error {
	if len(records) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO rent_records (id, owner_id, property_id, tenant_id, month, amount, status, created_at, updated_at) VALUES `)
	args := make([]any, 0, len(records)*rentRecordInsertColumns)
	for i := range records {
		records[i].ID = uuid.NewString()
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * rentRecordInsertColumns
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, NOW(), NOW())",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		rec := records[i]
		args = append(args, rec.ID, rec.OwnerID, rec.PropertyID, rec.TenantID, rec.Month, rec.Amount, rec.Status)
	}

	query := sb.String()
	logger.DatabaseCall("insert rent records", query, "count", len(records))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("insert rent records", 0, err)
		for i := range records {
			records[i].ID = ""
		}
		return classify("insert rent records", err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("insert rent records", n, nil)
	return nil
}

func (r *rentRecordRepository) UpdateStatus(ctx context.Context, rec *domain.RentRecord) error {
	query := `UPDATE rent_records SET status=$1, paid_date=$2, payment_method=$3, notes=$4, updated_at=NOW()
	          WHERE id=$5 AND owner_id=$6 RETURNING updated_at`
	logger.DatabaseCall("update rent record status", query, "id", rec.ID, "status", rec.Status)
	err := r.db.QueryRowContext(ctx, query, rec.Status, rec.PaidDate, rec.PaymentMethod, rec.Notes, rec.ID, rec.OwnerID).
		Scan(&rec.UpdatedAt)
	if err != nil {
		logger.DatabaseResult("update rent record status", 0, err)
		return classify("update rent record status", err)
	}
	logger.DatabaseResult("update rent record status", 1, nil)
	return nil
}

func rentRecordDest(rec *domain.RentRecord) []any {
	return []any{&rec.ID, &rec.OwnerID, &rec.PropertyID, &rec.TenantID, &rec.Month, &rec.Amount, &rec.Status,
		&rec.PaidDate, &rec.PaymentMethod, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt}
}

func scanRentRecord(row rowScanner, rec *domain.RentRecord) error {
	return row.Scan(rentRecordDest(rec)...)
}
