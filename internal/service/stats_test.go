package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/service"
)

var statsNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return statsNow }

// statsTrip builds a dated trip attributed to a location.
func statsTrip(year int, month time.Month, location string, expense, income float64) domain.Trip {
	d := time.Date(year, month, 10, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:             uuid.New(),
		Date:           &d,
		Location:       location,
		Fuel:           decimal.NewFromFloat(expense),
		IncomeFromSale: decimal.NewFromFloat(income),
		UpdatedAt:      d,
	}
}

func newStatsService(trips []domain.Trip, gear []domain.GearItem) (*service.StatsService, *int, *int) {
	tripCalls, gearCalls := 0, 0
	tripRepo := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			tripCalls++
			return trips, nil
		},
	}
	gearRepo := &mockGearRepo{
		list: func(_ context.Context) ([]domain.GearItem, error) {
			gearCalls++
			return gear, nil
		},
	}
	return service.NewStatsService(tripRepo, gearRepo, fixedNow), &tripCalls, &gearCalls
}

func TestStatsService_Dashboard_Totals(t *testing.T) {
	trips := []domain.Trip{
		statsTrip(2025, time.March, "Lake Tahoe", 100, 150),
		statsTrip(2025, time.April, "River Bend", 50, 0),
	}
	gear := []domain.GearItem{{Price: decimal.NewFromInt(80)}}
	svc, _, _ := newStatsService(trips, gear)

	d, err := svc.Dashboard(context.Background(), domain.BudgetSettings{}, domain.USD)

	require.NoError(t, err)
	assert.Equal(t, 2, d.TripCount)
	assert.True(t, d.TotalExpenses.Equal(decimal.NewFromInt(150)))
	assert.True(t, d.TotalIncome.Equal(decimal.NewFromInt(150)))
	assert.True(t, d.NetBalance.IsZero())
	assert.Equal(t, 1, d.GearCount)
	assert.True(t, d.GearSpend.Equal(decimal.NewFromInt(80)))
	assert.Len(t, d.MonthlySeries, 2)
	assert.Equal(t, "150 $", d.TotalExpensesDisplay)
}

// TestStatsService_Dashboard_YearNetConsistency pins the consistency
// property: the dashboard's net-cost-this-year figure equals yearly income
// minus yearly expenses as computed by the same aggregation functions the
// exports use.
func TestStatsService_Dashboard_YearNetConsistency(t *testing.T) {
	trips := []domain.Trip{
		statsTrip(2025, time.January, "A", 200, 30),
		statsTrip(2025, time.May, "B", 100, 400),
		statsTrip(2024, time.May, "B", 999, 0), // prior year, excluded
	}
	svc, _, _ := newStatsService(trips, nil)

	d, err := svc.Dashboard(context.Background(), domain.BudgetSettings{}, domain.USD)

	require.NoError(t, err)
	assert.True(t, d.YearNetBalance.Equal(d.YearIncome.Sub(d.YearExpenses)))
	assert.True(t, d.YearNetBalance.Equal(decimal.NewFromInt(130)), "430 income - 300 expenses")
	assert.True(t, d.CurrentYearNet.Equal(d.YearNetBalance),
		"year-over-year current must agree with the yearly sums")
}

func TestStatsService_Dashboard_BudgetEvaluatedPerRequest(t *testing.T) {
	trips := []domain.Trip{statsTrip(2025, time.June, "A", 150, 0)}
	svc, _, _ := newStatsService(trips, nil)

	settings := domain.BudgetSettings{MonthlyBudget: decimal.NewFromInt(100)}
	d, err := svc.Dashboard(context.Background(), settings, domain.USD)

	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Budget.MonthlyRatio)
	assert.True(t, d.Budget.OverBudgetMonthly.Equal(decimal.NewFromInt(50)))
}

func TestStatsService_Dashboard_NegativeBudgetRejected(t *testing.T) {
	svc, _, _ := newStatsService(nil, nil)

	settings := domain.BudgetSettings{MonthlyBudget: decimal.NewFromInt(-5)}
	_, err := svc.Dashboard(context.Background(), settings, domain.USD)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatsService_Dashboard_EmptyStore(t *testing.T) {
	svc, _, _ := newStatsService(nil, nil)

	d, err := svc.Dashboard(context.Background(), domain.BudgetSettings{}, domain.USD)

	require.NoError(t, err)
	assert.Zero(t, d.TripCount)
	assert.True(t, d.AverageExpensePerTrip.IsZero(), "no division by zero on empty input")
	assert.Empty(t, d.MonthlySeries)
	assert.Equal(t, "0 $", d.NetBalanceDisplay)
}

func TestStatsService_Dashboard_FetchFailurePropagates(t *testing.T) {
	tripRepo := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return nil, domain.ErrFetchFailed
		},
	}
	gearRepo := &mockGearRepo{
		list: func(_ context.Context) ([]domain.GearItem, error) { return nil, nil },
	}
	svc := service.NewStatsService(tripRepo, gearRepo, fixedNow)

	_, err := svc.Dashboard(context.Background(), domain.BudgetSettings{}, domain.USD)

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestStatsService_Dashboard_SnapshotMemoizedAcrossCalls(t *testing.T) {
	trips := []domain.Trip{statsTrip(2025, time.June, "A", 10, 0)}
	svc, tripCalls, _ := newStatsService(trips, nil)

	ctx := context.Background()
	_, err := svc.Dashboard(ctx, domain.BudgetSettings{}, domain.USD)
	require.NoError(t, err)
	first, err := svc.Dashboard(ctx, domain.BudgetSettings{}, domain.USD)
	require.NoError(t, err)

	// The store is still consulted every time (that is the freshness
	// signal), but with an unchanged fingerprint the figures come from
	// the memoized snapshot.
	assert.Equal(t, 2, *tripCalls)
	assert.Equal(t, 1, first.TripCount)
}

func TestStatsService_Dashboard_RecomputesAfterContentChange(t *testing.T) {
	trips := []domain.Trip{statsTrip(2025, time.June, "A", 10, 0)}
	tripRepo := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return trips, nil },
	}
	gearRepo := &mockGearRepo{
		list: func(_ context.Context) ([]domain.GearItem, error) { return nil, nil },
	}
	svc := service.NewStatsService(tripRepo, gearRepo, fixedNow)

	ctx := context.Background()
	before, err := svc.Dashboard(ctx, domain.BudgetSettings{}, domain.USD)
	require.NoError(t, err)

	trips = append(trips, statsTrip(2025, time.June, "B", 40, 0))

	after, err := svc.Dashboard(ctx, domain.BudgetSettings{}, domain.USD)
	require.NoError(t, err)

	assert.Equal(t, 1, before.TripCount)
	assert.Equal(t, 2, after.TripCount, "new fingerprint must trigger recomputation")
}
