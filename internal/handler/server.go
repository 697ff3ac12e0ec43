// Package handler implements the HTTP handlers for the Fishing Logbook API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GearServicer defines the business operations the gear handlers depend on.
type GearServicer interface {
	Create(ctx context.Context, item domain.GearItem) (domain.GearItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.GearItem, error)
	List(ctx context.Context) ([]domain.GearItem, error)
	Update(ctx context.Context, item domain.GearItem) (domain.GearItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsServicer defines the dashboard operation the stats handler depends on.
type StatsServicer interface {
	Dashboard(ctx context.Context, settings domain.BudgetSettings, cur domain.Currency) (service.Dashboard, error)
}

// ExportServicer defines the export operations the export handlers depend on.
type ExportServicer interface {
	ExportCSV(ctx context.Context) (domain.Artifact, error)
	ExportPDF(ctx context.Context, cur domain.Currency) (domain.Artifact, error)
	ExportTripSummary(ctx context.Context, id uuid.UUID, cur domain.Currency) (domain.Artifact, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips   TripServicer
	gear    GearServicer
	stats   StatsServicer
	exports ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, gear GearServicer, stats StatsServicer, exports ExportServicer) *Server {
	return &Server{trips: trips, gear: gear, stats: stats, exports: exports}
}

// Routes mounts every endpoint on a fresh chi router. Middleware is the
// caller's concern; main.go wraps this router with logging, CORS, and
// body-size limits.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Get("/{id}", s.GetTrip)
		r.Put("/{id}", s.UpdateTrip)
		r.Delete("/{id}", s.DeleteTrip)
		r.Get("/{id}/export", s.ExportTripSummary)
	})

	r.Route("/gear", func(r chi.Router) {
		r.Post("/", s.CreateGearItem)
		r.Get("/", s.ListGearItems)
		r.Get("/{id}", s.GetGearItem)
		r.Put("/{id}", s.UpdateGearItem)
		r.Delete("/{id}", s.DeleteGearItem)
	})

	r.Get("/stats/dashboard", s.GetDashboard)
	r.Get("/export", s.GetExport)

	return r
}

// idParam parses the {id} path parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
