// Package service contains the business logic for the Fishing Logbook API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/repo"
)

// Invalidator is notified after every successful write so derived-state
// consumers (the stats snapshot cache) recompute on the next read.
type Invalidator interface {
	Invalidate()
}

// noopInvalidator lets services be constructed without a cache in tests.
type noopInvalidator struct{}

func (noopInvalidator) Invalidate() {}

// TripService implements business logic for Trip operations.
type TripService struct {
	repo  repo.TripRepo
	cache Invalidator
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// cache may be nil when no derived-state invalidation is needed.
func NewTripService(r repo.TripRepo, cache Invalidator) *TripService {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &TripService{repo: r, cache: cache}
}

// Create validates and persists a new trip. The record is only saved when
// every field passes validation; there are no partial saves.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip, true); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	s.cache.Invalidate()
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips, newest date first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and updates an existing trip in place. The identifier
// is never reassigned.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip, false); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	s.cache.Invalidate()
	return result, nil
}

// Delete removes a trip by ID. Trips and gear are independent, so nothing
// cascades.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	s.cache.Invalidate()
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
// Every failure names the offending field; the aggregation engine can then
// assume all amounts it sees are valid non-negative numbers.
func validateTrip(trip domain.Trip, requireLocation bool) error {
	if requireLocation && strings.TrimSpace(trip.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"fuel", trip.Fuel},
		{"bait", trip.Bait},
		{"license", trip.License},
		{"boat_rental", trip.BoatRental},
		{"food", trip.Food},
		{"other", trip.Other},
		{"income_from_sale", trip.IncomeFromSale},
	} {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrValidation, f.name)
		}
	}
	if !domain.ValidWeather(trip.Weather) {
		return fmt.Errorf("%w: weather must be one of %s", domain.ErrValidation,
			strings.Join(domain.WeatherConditions, ", "))
	}
	return nil
}
