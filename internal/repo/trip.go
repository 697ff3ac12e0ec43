// Package repo contains all database access logic for the Fishing Logbook
// API. Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by date descending, undated trips last.
	// This full fetch is the sole input to the aggregation engine.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. The ID is never reassigned.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does
	// not exist. Deleting a trip cascades to nothing.
	Delete(ctx context.Context, id uuid.UUID) error
}

const tripColumns = `id, date, location, fuel, bait, license, boat_rental, food, other,
	income_from_sale, notes, fish_caught, weather, temperature_c, photo, created_at, updated_at`

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (date, location, fuel, bait, license, boat_rental, food, other,
			income_from_sale, notes, fish_caught, weather, temperature_c, photo)
		VALUES (@date, @location, @fuel, @bait, @license, @boat_rental, @food, @other,
			@income_from_sale, @notes, @fish_caught, @weather, @temperature_c, @photo)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w: %v", domain.ErrFetchFailed, err)
	}
	return result, nil
}

// List returns all trips ordered by date descending (most recent first),
// with undated trips at the end.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY date DESC NULLS LAST, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w: %v", domain.ErrFetchFailed, err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w: %v", domain.ErrFetchFailed, err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w: %v", domain.ErrFetchFailed, err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET date             = @date,
		    location         = @location,
		    fuel             = @fuel,
		    bait             = @bait,
		    license          = @license,
		    boat_rental      = @boat_rental,
		    food             = @food,
		    other            = @other,
		    income_from_sale = @income_from_sale,
		    notes            = @notes,
		    fish_caught      = @fish_caught,
		    weather          = @weather,
		    temperature_c    = @temperature_c,
		    photo            = @photo,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := tripArgs(trip)
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs maps the insertable/updatable trip fields to named SQL args.
func tripArgs(t domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"date":             t.Date, // nil becomes NULL
		"location":         t.Location,
		"fuel":             t.Fuel,
		"bait":             t.Bait,
		"license":          t.License,
		"boat_rental":      t.BoatRental,
		"food":             t.Food,
		"other":            t.Other,
		"income_from_sale": t.IncomeFromSale,
		"notes":            t.Notes,
		"fish_caught":      t.FishCaught,
		"weather":          t.Weather,
		"temperature_c":    t.TemperatureC,
		"photo":            t.Photo,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, nullable date, and nullable temperature conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t    domain.Trip
		id   pgtype.UUID
		date pgtype.Date
		temp pgtype.Float8
	)

	err := s.Scan(&id, &date, &t.Location, &t.Fuel, &t.Bait, &t.License, &t.BoatRental,
		&t.Food, &t.Other, &t.IncomeFromSale, &t.Notes, &t.FishCaught, &t.Weather,
		&temp, &t.Photo, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if date.Valid {
		d := date.Time
		t.Date = &d
	}
	if temp.Valid {
		v := temp.Float64
		t.TemperatureC = &v
	}

	return t, nil
}
