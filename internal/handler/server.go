// Package handler implements the HTTP handlers for the NomadSuite API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, calculations.go, client.go, expense.go, health.go) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ComplianceServicer defines the compliance calculations exposed under
// /api/trips/calculations. A nil asOf means "today" (UTC).
type ComplianceServicer interface {
	TaxResidency(ctx context.Context, asOf *time.Time) ([]domain.CountryDays, error)
	Schengen(ctx context.Context, asOf *time.Time) (domain.SchengenStatus, error)
	Summary(ctx context.Context, asOf *time.Time) (domain.TravelSummary, error)
}

// ClientServicer defines the business operations the client handlers depend on.
type ClientServicer interface {
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Client, int64, error)
	Update(ctx context.Context, client domain.Client) (domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseServicer defines the business operations the expense handlers depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error)
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Expense, int64, error)
	Update(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips      TripServicer
	compliance ComplianceServicer
	clients    ClientServicer
	expenses   ExpenseServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, compliance ComplianceServicer, clients ClientServicer, expenses ExpenseServicer) *Server {
	return &Server{trips: trips, compliance: compliance, clients: clients, expenses: expenses}
}

// Routes registers every API route on the given router.
// The calculations routes are registered as static paths under /trips, which
// chi matches before the /{id} parameter route.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)

			r.Get("/calculations/tax-residency", s.GetTaxResidency)
			r.Get("/calculations/schengen", s.GetSchengen)
			r.Get("/calculations/summary", s.GetTravelSummary)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
			})
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", s.ListClients)
			r.Post("/", s.CreateClient)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetClient)
				r.Put("/", s.UpdateClient)
				r.Delete("/", s.DeleteClient)
			})
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", s.ListExpenses)
			r.Post("/", s.CreateExpense)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetExpense)
				r.Put("/", s.UpdateExpense)
				r.Delete("/", s.DeleteExpense)
			})
		})
	})
}
