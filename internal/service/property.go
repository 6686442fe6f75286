package service

import (
	"context"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

func (s *propertyService) CreateProperty(ctx context.Context, owner domain.Owner, p *domain.Property) error {
	logger.EnterMethod("propertyService.CreateProperty", "ownerID", owner.ID)
	if err := requireOwner(owner); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.OwnerID = owner.ID
	if err := s.propertyRepo.Create(ctx, p); err != nil {
		logger.ExitMethodWithError("propertyService.CreateProperty", err, "ownerID", owner.ID)
		return err
	}
	logger.ExitMethod("propertyService.CreateProperty", "propertyID", p.ID)
	return nil
}

func (s *propertyService) GetProperty(ctx context.Context, owner domain.Owner, id string) (*domain.Property, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	return s.propertyRepo.GetByID(ctx, owner.ID, id)
}

func (s *propertyService) ListProperties(ctx context.Context, owner domain.Owner) ([]domain.Property, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	return s.propertyRepo.List(ctx, owner.ID)
}

func (s *propertyService) UpdateProperty(ctx context.Context, owner domain.Owner, p *domain.Property) error {
	logger.EnterMethod("propertyService.UpdateProperty", "ownerID", owner.ID, "propertyID", p.ID)
	if err := requireOwner(owner); err != nil {
		return err
	}
	if p.ID == "" {
		return domain.NewValidationError("id", "is required")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.OwnerID = owner.ID
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		logger.ExitMethodWithError("propertyService.UpdateProperty", err, "propertyID", p.ID)
		return err
	}
	logger.ExitMethod("propertyService.UpdateProperty", "propertyID", p.ID)
	return nil
}

// DeleteProperty removes the property together with its tenants and rent records.
func (s *propertyService) DeleteProperty(ctx context.Context, owner domain.Owner, id string) error {
	logger.EnterMethod("propertyService.DeleteProperty", "ownerID", owner.ID, "propertyID", id)
	if err := requireOwner(owner); err != nil {
		return err
	}
	if err := s.propertyRepo.Delete(ctx, owner.ID, id); err != nil {
		logger.ExitMethodWithError("propertyService.DeleteProperty", err, "propertyID", id)
		return err
	}
	logger.ExitMethod("propertyService.DeleteProperty", "propertyID", id)
	return nil
}
