package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/compliance"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/repo"
)

// ComplianceService runs the pure compliance engine over the persisted trip
// list. Each call re-reads the full list and recomputes from scratch; trip
// histories are small and the engine is cheap, so there is no caching.
//
// The reference date is resolved here: a nil asOf from the HTTP layer means
// "today", pinned to the UTC calendar date so results never depend on the
// server's local midnight.
type ComplianceService struct {
	repo repo.TripRepo
	log  *slog.Logger
}

// NewComplianceService constructs a ComplianceService backed by the provided
// TripRepo. Data-integrity warnings are logged through log.
func NewComplianceService(r repo.TripRepo, log *slog.Logger) *ComplianceService {
	return &ComplianceService{repo: r, log: log}
}

// TaxResidency returns the per-country 183-day rule evaluation for the
// calendar year of asOf, sorted highest-risk first.
func (s *ComplianceService) TaxResidency(ctx context.Context, asOf *time.Time) ([]domain.CountryDays, error) {
	trips, ref, err := s.load(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("service.ComplianceService.TaxResidency: %w", err)
	}
	return compliance.TaxResidency(trips, ref), nil
}

// Schengen returns the 90/180 rolling-window evaluation as of asOf.
func (s *ComplianceService) Schengen(ctx context.Context, asOf *time.Time) (domain.SchengenStatus, error) {
	trips, ref, err := s.load(ctx, asOf)
	if err != nil {
		return domain.SchengenStatus{}, fmt.Errorf("service.ComplianceService.Schengen: %w", err)
	}
	return compliance.Schengen(trips, ref), nil
}

// Summary returns the travel summary statistics as of asOf.
func (s *ComplianceService) Summary(ctx context.Context, asOf *time.Time) (domain.TravelSummary, error) {
	trips, ref, err := s.load(ctx, asOf)
	if err != nil {
		return domain.TravelSummary{}, fmt.Errorf("service.ComplianceService.Summary: %w", err)
	}
	return compliance.Summarize(trips, ref), nil
}

// load fetches the trip list, resolves the reference date, and logs any
// data-integrity warnings. Malformed trips stay in the list (the engine
// skips them itself) but each one is reported so it can be fixed.
func (s *ComplianceService) load(ctx context.Context, asOf *time.Time) ([]domain.Trip, time.Time, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	ref := time.Now().UTC()
	if asOf != nil {
		ref = *asOf
	}
	ref = compliance.DateOnly(ref)

	for _, w := range compliance.Warnings(trips) {
		s.log.WarnContext(ctx, "trip data integrity", "warning", w)
	}

	return trips, ref, nil
}
