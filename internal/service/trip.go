// Package service contains the business logic for the NomadSuite backend.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/compliance"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/repo"
)

// TripService implements business logic for Trip operations.
// Write operations enforce the invariants the compliance engine relies on:
// a valid ISO country code, exit not before entry, and no overlapping trips
// (a traveler is in one country at a time; sharing a boundary day with an
// adjacent trip is allowed; that is the travel day).
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip, err := s.validate(ctx, trip, uuid.Nil)
	if err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips in chronological order.
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

// ListPaged returns one page of trips (most recent first) and the total count.
func (s *TripService) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and updates an existing trip.
// Returns domain.ErrNotFound if the trip does not exist,
// domain.ErrValidation if input violates business rules.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip, err := s.validate(ctx, trip, trip.ID)
	if err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validate enforces the write-time invariants and returns the trip with its
// country code normalized. excludeID is the trip's own ID on update so the
// overlap check does not compare the trip against itself.
func (s *TripService) validate(ctx context.Context, trip domain.Trip, excludeID uuid.UUID) (domain.Trip, error) {
	code, ok := compliance.NormalizeCountry(trip.Country)
	if !ok {
		return domain.Trip{}, fmt.Errorf("%w: country must be an ISO-3166-1 alpha-2 code", domain.ErrValidation)
	}
	trip.Country = code

	if trip.EntryDate.IsZero() {
		return domain.Trip{}, fmt.Errorf("%w: entry_date is required", domain.ErrValidation)
	}
	if trip.ExitDate != nil && trip.ExitDate.Before(trip.EntryDate) {
		return domain.Trip{}, fmt.Errorf("%w: exit_date must not be before entry_date", domain.ErrValidation)
	}

	n, err := s.repo.CountOverlapping(ctx, trip.EntryDate, trip.ExitDate, excludeID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.validate: %w", err)
	}
	if n > 0 {
		return domain.Trip{}, fmt.Errorf("%w: trip overlaps an existing trip", domain.ErrValidation)
	}

	return trip, nil
}
