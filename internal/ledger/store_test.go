package ledger

import (
	"context"
	"fmt"
	"sync"

	"rent-ledger-backend/internal/domain"
)

// memLedger is an in-memory store that enforces the (tenant_id, month)
// uniqueness the database schema does.
type memLedger struct {
	mu        sync.Mutex
	tenants   []domain.Tenant
	records   []domain.RentRecord
	nextID    int
	inserts   int
	insertErr error
	listErr   error
}

type memTenants struct{ db *memLedger }
type memRecords struct{ db *memLedger }

func newMemLedger(tenants ...domain.Tenant) *memLedger {
	return &memLedger{tenants: tenants}
}

func (m *memLedger) reconciler() *Reconciler {
	return NewReconciler(memTenants{m}, memRecords{m})
}

func (t memTenants) Create(ctx context.Context, tn *domain.Tenant) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.db.tenants = append(t.db.tenants, *tn)
	return nil
}

func (t memTenants) GetByID(ctx context.Context, ownerID, id string) (*domain.Tenant, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	for _, tn := range t.db.tenants {
		if tn.ID == id && tn.OwnerID == ownerID {
			found := tn
			return &found, nil
		}
	}
	return nil, domain.ErrNotFoundOrForbidden
}

func (t memTenants) List(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	var out []domain.Tenant
	for _, tn := range t.db.tenants {
		if tn.OwnerID == ownerID {
			out = append(out, tn)
		}
	}
	return out, nil
}

func (t memTenants) ListByProperty(ctx context.Context, ownerID, propertyID string) ([]domain.Tenant, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if t.db.listErr != nil {
		return nil, t.db.listErr
	}
	var out []domain.Tenant
	for _, tn := range t.db.tenants {
		if tn.OwnerID == ownerID && tn.PropertyID == propertyID {
			out = append(out, tn)
		}
	}
	return out, nil
}

func (t memTenants) CountActive(ctx context.Context, ownerID string) (int, error) {
	tenants, _ := t.List(ctx, ownerID)
	n := 0
	for _, tn := range tenants {
		if tn.IsActive {
			n++
		}
	}
	return n, nil
}

func (t memTenants) Update(ctx context.Context, tn *domain.Tenant) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	for i := range t.db.tenants {
		if t.db.tenants[i].ID == tn.ID && t.db.tenants[i].OwnerID == tn.OwnerID {
			t.db.tenants[i] = *tn
			return nil
		}
	}
	return domain.ErrNotFoundOrForbidden
}

func (t memTenants) SetActive(ctx context.Context, ownerID, id string, active bool) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	for i := range t.db.tenants {
		if t.db.tenants[i].ID == id && t.db.tenants[i].OwnerID == ownerID {
			t.db.tenants[i].IsActive = active
			return nil
		}
	}
	return domain.ErrNotFoundOrForbidden
}

func (t memTenants) Delete(ctx context.Context, ownerID, id string) error {
	return nil
}

func (r memRecords) GetByID(ctx context.Context, ownerID, id string) (*domain.RentRecord, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, rec := range r.db.records {
		if rec.ID == id && rec.OwnerID == ownerID {
			found := rec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFoundOrForbidden
}

func (r memRecords) ListByProperty(ctx context.Context, ownerID, propertyID string, month domain.Month) ([]domain.RentRecord, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.RentRecord
	for _, rec := range r.db.records {
		if rec.OwnerID == ownerID && rec.PropertyID == propertyID && rec.Month.Equal(month) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r memRecords) ListByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.RentRecord, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.RentRecord
	for _, rec := range r.db.records {
		if rec.OwnerID == ownerID && rec.Month.Equal(month) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r memRecords) InsertBatch(ctx context.Context, records []domain.RentRecord) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.inserts++
	if r.db.insertErr != nil {
		return r.db.insertErr
	}
	for _, rec := range records {
		for _, have := range r.db.records {
			if have.TenantID == rec.TenantID && have.Month.Equal(rec.Month) {
				return &domain.TransientStoreError{Op: "insert rent records", Err: domain.ErrDuplicateRentRecord}
			}
		}
	}
	for i := range records {
		r.db.nextID++
		records[i].ID = fmt.Sprintf("rec-%d", r.db.nextID)
		r.db.records = append(r.db.records, records[i])
	}
	return nil
}

func (r memRecords) UpdateStatus(ctx context.Context, rec *domain.RentRecord) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.records {
		if r.db.records[i].ID == rec.ID && r.db.records[i].OwnerID == rec.OwnerID {
			r.db.records[i] = *rec
			return nil
		}
	}
	return domain.ErrNotFoundOrForbidden
}
