package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/repo"
	"github.com/anglerlog/anglerlog/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// countingInvalidator records how often the stats cache was invalidated.
type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate() { c.n++ }

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		Date:           &date,
		Location:       "Lake Tahoe",
		Fuel:           decimal.NewFromInt(20),
		IncomeFromSale: decimal.NewFromInt(35),
		Weather:        "Sunny",
	}
}

func echoRepo() *mockTripRepo {
	// A repo that echoes whatever it receives back — useful for Create/Update
	// tests that only care about validation logic, not what the DB returns.
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		update: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	svc := service.NewTripService(echoRepo(), nil)

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, "Lake Tahoe", got.Location)
}

func TestTripService_Create_MissingLocation(t *testing.T) {
	svc := service.NewTripService(echoRepo(), nil)

	trip := validTrip()
	trip.Location = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), trip)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "location")
}

func TestTripService_Create_NegativeExpense(t *testing.T) {
	svc := service.NewTripService(echoRepo(), nil)

	trip := validTrip()
	trip.Bait = decimal.NewFromInt(-1)

	_, err := svc.Create(context.Background(), trip)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "bait")
}

func TestTripService_Create_NegativeIncome(t *testing.T) {
	svc := service.NewTripService(echoRepo(), nil)

	trip := validTrip()
	trip.IncomeFromSale = decimal.NewFromInt(-10)

	_, err := svc.Create(context.Background(), trip)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "income_from_sale")
}

func TestTripService_Create_UnknownWeather(t *testing.T) {
	svc := service.NewTripService(echoRepo(), nil)

	trip := validTrip()
	trip.Weather = "Blizzard"

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_NilDateIsValid(t *testing.T) {
	svc := service.NewTripService(echoRepo(), nil)

	trip := validTrip()
	trip.Date = nil // unknown date is allowed, just excluded from aggregation

	_, err := svc.Create(context.Background(), trip)

	assert.NoError(t, err)
}

func TestTripService_Create_InvalidInputNeverReachesRepo(t *testing.T) {
	called := false
	r := &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) {
			called = true
			return t, nil
		},
	}
	svc := service.NewTripService(r, nil)

	trip := validTrip()
	trip.Fuel = decimal.NewFromInt(-5)

	_, err := svc.Create(context.Background(), trip)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, called, "no partial save on validation failure")
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, repoErr
		},
	}
	svc := service.NewTripService(r, nil)

	_, err := svc.Create(context.Background(), validTrip())

	assert.ErrorIs(t, err, repoErr)
}

func TestTripService_Create_InvalidatesStatsCache(t *testing.T) {
	inv := &countingInvalidator{}
	svc := service.NewTripService(echoRepo(), inv)

	_, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, 1, inv.n)
}

// ---- GetByID tests ---------------------------------------------------------

func TestTripService_GetByID_Found(t *testing.T) {
	want := validTrip()
	want.ID = uuid.New()

	r := &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return want, nil
		},
	}
	svc := service.NewTripService(r, nil)

	got, err := svc.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(r, nil)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List tests ------------------------------------------------------------

func TestTripService_List_Empty(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, nil },
	}
	svc := service.NewTripService(r, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	// Should return an empty slice, not nil — callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_List_FetchFailure(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return nil, domain.ErrFetchFailed
		},
	}
	svc := service.NewTripService(r, nil)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

// ---- Update tests ----------------------------------------------------------

func TestTripService_Update_Valid(t *testing.T) {
	inv := &countingInvalidator{}
	svc := service.NewTripService(echoRepo(), inv)

	trip := validTrip()
	trip.ID = uuid.New()
	trip.Location = "" // location may be cleared after creation

	got, err := svc.Update(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, domain.UnknownLocation, got.DisplayLocation())
	assert.Equal(t, 1, inv.n)
}

func TestTripService_Update_NegativeExpense(t *testing.T) {
	svc := service.NewTripService(echoRepo(), nil)

	trip := validTrip()
	trip.Other = decimal.NewFromInt(-2)

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete tests ----------------------------------------------------------

func TestTripService_Delete_OK(t *testing.T) {
	inv := &countingInvalidator{}
	r := &mockTripRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
	svc := service.NewTripService(r, inv)

	err := svc.Delete(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, 1, inv.n)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	inv := &countingInvalidator{}
	r := &mockTripRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewTripService(r, inv)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, inv.n, "failed delete must not invalidate the cache")
}
