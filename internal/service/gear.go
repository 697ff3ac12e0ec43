package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/repo"
)

// GearService implements business logic for gear item operations.
type GearService struct {
	repo  repo.GearRepo
	cache Invalidator
}

// NewGearService constructs a GearService backed by the provided GearRepo.
// cache may be nil when no derived-state invalidation is needed.
func NewGearService(r repo.GearRepo, cache Invalidator) *GearService {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &GearService{repo: r, cache: cache}
}

// Create validates and persists a new gear item.
func (s *GearService) Create(ctx context.Context, item domain.GearItem) (domain.GearItem, error) {
	if err := validateGear(item); err != nil {
		return domain.GearItem{}, err
	}
	result, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("service.GearService.Create: %w", err)
	}
	s.cache.Invalidate()
	return result, nil
}

// GetByID returns a single gear item by ID.
func (s *GearService) GetByID(ctx context.Context, id uuid.UUID) (domain.GearItem, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("service.GearService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all gear items, most recent purchase first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *GearService) List(ctx context.Context) ([]domain.GearItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GearService.List: %w", err)
	}
	if items == nil {
		return []domain.GearItem{}, nil
	}
	return items, nil
}

// Update validates and persists changes to an existing gear item.
func (s *GearService) Update(ctx context.Context, item domain.GearItem) (domain.GearItem, error) {
	if err := validateGear(item); err != nil {
		return domain.GearItem{}, err
	}
	result, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("service.GearService.Update: %w", err)
	}
	s.cache.Invalidate()
	return result, nil
}

// Delete removes a gear item by ID.
func (s *GearService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.GearService.Delete: %w", err)
	}
	s.cache.Invalidate()
	return nil
}

// validateGear enforces business rules common to both Create and Update.
func validateGear(item domain.GearItem) error {
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if item.PurchaseDate.IsZero() {
		return fmt.Errorf("%w: purchase_date is required", domain.ErrValidation)
	}
	return nil
}
