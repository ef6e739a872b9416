package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/service"
)

// discardLogger swallows log output so warning paths can run in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// tripListRepo is a mockTripRepo that serves a fixed trip list.
func tripListRepo(trips []domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return trips, nil },
	}
}

func asOf(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestComplianceService_TaxResidency(t *testing.T) {
	exit := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	trips := []domain.Trip{{
		Country:   "TH",
		EntryDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExitDate:  &exit,
	}}
	svc := service.NewComplianceService(tripListRepo(trips), discardLogger())

	got, err := svc.TaxResidency(context.Background(), asOf(2024, time.March, 20))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TH", got[0].Country)
	assert.Equal(t, 46, got[0].Days)
}

func TestComplianceService_TaxResidency_EmptyTripList(t *testing.T) {
	svc := service.NewComplianceService(tripListRepo(nil), discardLogger())

	got, err := svc.TaxResidency(context.Background(), asOf(2024, time.March, 20))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComplianceService_Schengen(t *testing.T) {
	ref := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	exit := ref
	trips := []domain.Trip{{
		Country:   "FR",
		EntryDate: ref.AddDate(0, 0, -9),
		ExitDate:  &exit,
	}}
	svc := service.NewComplianceService(tripListRepo(trips), discardLogger())

	got, err := svc.Schengen(context.Background(), &ref)

	require.NoError(t, err)
	assert.Equal(t, 10, got.DaysUsed)
	assert.Equal(t, 80, got.DaysRemaining)
}

// TestComplianceService_NilAsOfDefaultsToToday verifies that a nil reference
// date falls back to the current UTC date; an open trip entered today counts
// exactly one day.
func TestComplianceService_NilAsOfDefaultsToToday(t *testing.T) {
	trips := []domain.Trip{{
		Country:   "JP",
		EntryDate: time.Now().UTC(),
	}}
	svc := service.NewComplianceService(tripListRepo(trips), discardLogger())

	got, err := svc.Summary(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, got.CountrySummaries, 1)
	assert.Equal(t, 1, got.CountrySummaries[0].TotalDays)
}

func TestComplianceService_Summary_SkipsMalformedTrips(t *testing.T) {
	badExit := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	trips := []domain.Trip{{
		Country:   "TH",
		EntryDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		ExitDate:  &badExit, // exit before entry
	}}
	svc := service.NewComplianceService(tripListRepo(trips), discardLogger())

	got, err := svc.Summary(context.Background(), asOf(2024, time.June, 1))

	require.NoError(t, err)
	assert.Zero(t, got.TotalCountries)
}

func TestComplianceService_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, repoErr },
	}
	svc := service.NewComplianceService(r, discardLogger())

	_, err := svc.Schengen(context.Background(), asOf(2024, time.June, 1))

	assert.ErrorIs(t, err, repoErr)
}
