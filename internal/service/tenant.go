package service

import (
	"context"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository"
)

type tenantService struct {
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
}

func NewTenantService(tenantRepo repository.TenantRepository, propertyRepo repository.PropertyRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo, propertyRepo: propertyRepo}
}

func (s *tenantService) CreateTenant(ctx context.Context, owner domain.Owner, t *domain.Tenant) error {
	logger.EnterMethod("tenantService.CreateTenant", "ownerID", owner.ID, "propertyID", t.PropertyID)
	if err := requireOwner(owner); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	// The property has to be the caller's before a tenant can be attached to it.
	if _, err := s.propertyRepo.GetByID(ctx, owner.ID, t.PropertyID); err != nil {
		logger.ExitMethodWithError("tenantService.CreateTenant", err, "propertyID", t.PropertyID)
		return err
	}
	t.OwnerID = owner.ID
	if err := s.tenantRepo.Create(ctx, t); err != nil {
		logger.ExitMethodWithError("tenantService.CreateTenant", err, "propertyID", t.PropertyID)
		return err
	}
	logger.ExitMethod("tenantService.CreateTenant", "tenantID", t.ID)
	return nil
}

func (s *tenantService) GetTenant(ctx context.Context, owner domain.Owner, id string) (*domain.Tenant, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	return s.tenantRepo.GetByID(ctx, owner.ID, id)
}

func (s *tenantService) ListTenants(ctx context.Context, owner domain.Owner, propertyID string) ([]domain.Tenant, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if propertyID != "" {
		return s.tenantRepo.ListByProperty(ctx, owner.ID, propertyID)
	}
	return s.tenantRepo.List(ctx, owner.ID)
}

// UpdateTenant changes the tenant row only. Records already generated keep their amount.
func (s *tenantService) UpdateTenant(ctx context.Context, owner domain.Owner, t *domain.Tenant) error {
	logger.EnterMethod("tenantService.UpdateTenant", "ownerID", owner.ID, "tenantID", t.ID)
	if err := requireOwner(owner); err != nil {
		return err
	}
	if t.ID == "" {
		return domain.NewValidationError("id", "is required")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.propertyRepo.GetByID(ctx, owner.ID, t.PropertyID); err != nil {
		logger.ExitMethodWithError("tenantService.UpdateTenant", err, "propertyID", t.PropertyID)
		return err
	}
	t.OwnerID = owner.ID
	if err := s.tenantRepo.Update(ctx, t); err != nil {
		logger.ExitMethodWithError("tenantService.UpdateTenant", err, "tenantID", t.ID)
		return err
	}
	logger.ExitMethod("tenantService.UpdateTenant", "tenantID", t.ID)
	return nil
}

func (s *tenantService) SetTenantActive(ctx context.Context, owner domain.Owner, id string, active bool) error {
	logger.EnterMethod("tenantService.SetTenantActive", "ownerID", owner.ID, "tenantID", id, "active", active)
	if err := requireOwner(owner); err != nil {
		return err
	}
	if err := s.tenantRepo.SetActive(ctx, owner.ID, id, active); err != nil {
		logger.ExitMethodWithError("tenantService.SetTenantActive", err, "tenantID", id)
		return err
	}
	logger.ExitMethod("tenantService.SetTenantActive", "tenantID", id)
	return nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, owner domain.Owner, id string) error {
	logger.EnterMethod("tenantService.DeleteTenant", "ownerID", owner.ID, "tenantID", id)
	if err := requireOwner(owner); err != nil {
		return err
	}
	if err := s.tenantRepo.Delete(ctx, owner.ID, id); err != nil {
		logger.ExitMethodWithError("tenantService.DeleteTenant", err, "tenantID", id)
		return err
	}
	logger.ExitMethod("tenantService.DeleteTenant", "tenantID", id)
	return nil
}
