package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/anglerlog/anglerlog/internal/budget"
	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/repo"
	"github.com/anglerlog/anglerlog/internal/stats"
)

// topLocationLimit caps the location rankings on the dashboard.
const topLocationLimit = 5

// Snapshot holds every derived figure that depends only on the stored
// records, not on per-request settings. It is what the snapshot cache
// memoizes; budget progress and currency text are layered on per request.
type Snapshot struct {
	TripCount     int             `json:"trip_count"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	NetBalance    decimal.Decimal `json:"net_balance"`

	AverageExpensePerTrip decimal.Decimal `json:"average_expense_per_trip"`

	TripsThisYear  int             `json:"trips_this_year"`
	YearExpenses   decimal.Decimal `json:"year_expenses"`
	YearIncome     decimal.Decimal `json:"year_income"`
	YearNetBalance decimal.Decimal `json:"year_net_balance"`
	PriorYearNet   decimal.Decimal `json:"prior_year_net_balance"`
	CurrentYearNet decimal.Decimal `json:"current_year_net_balance"`

	MonthlySeries []stats.MonthlyBucket `json:"monthly_series"`

	TopLocationsByExpense []stats.LocationTotal `json:"top_locations_by_expense"`
	TopLocationsByProfit  []stats.LocationTotal `json:"top_locations_by_profit"`

	FishTally    []stats.LabelCount `json:"fish_tally"`
	WeatherTally []stats.LabelCount `json:"weather_tally"`

	GearCount int             `json:"gear_count"`
	GearSpend decimal.Decimal `json:"gear_spend"`
}

// Dashboard is a Snapshot plus the per-request budget evaluation and the
// headline money figures rendered through the currency formatter.
type Dashboard struct {
	Snapshot
	Budget budget.Progress `json:"budget"`

	TotalExpensesDisplay string `json:"total_expenses_display"`
	TotalIncomeDisplay   string `json:"total_income_display"`
	NetBalanceDisplay    string `json:"net_balance_display"`
}

// StatsService builds dashboard snapshots from the record store.
// Aggregation is a full recomputation over the in-memory collection;
// the cache only skips it while the collection content is unchanged.
type StatsService struct {
	trips repo.TripRepo
	gear  repo.GearRepo
	now   func() time.Time
	cache *stats.SnapshotCache[Snapshot]
}

// NewStatsService constructs a StatsService. now is injected for
// testability; pass time.Now in production.
func NewStatsService(trips repo.TripRepo, gear repo.GearRepo, now func() time.Time) *StatsService {
	return &StatsService{
		trips: trips,
		gear:  gear,
		now:   now,
		cache: &stats.SnapshotCache[Snapshot]{},
	}
}

// Cache exposes the snapshot cache so mutating services can invalidate it.
func (s *StatsService) Cache() Invalidator {
	return s.cache
}

// Dashboard fetches the full record set, computes (or reuses) the derived
// snapshot, and evaluates the given budget settings against it.
func (s *StatsService) Dashboard(ctx context.Context, settings domain.BudgetSettings, cur domain.Currency) (Dashboard, error) {
	if err := settings.Validate(); err != nil {
		return Dashboard{}, fmt.Errorf("service.StatsService.Dashboard: %w: budget thresholds must not be negative", domain.ErrValidation)
	}

	trips, gear, err := s.fetchAll(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("service.StatsService.Dashboard: %w", err)
	}

	snap := s.snapshot(trips, gear)

	return Dashboard{
		Snapshot:             snap,
		Budget:               budget.Evaluate(trips, settings, s.now()),
		TotalExpensesDisplay: domain.FormatMoney(snap.TotalExpenses, cur),
		TotalIncomeDisplay:   domain.FormatMoney(snap.TotalIncome, cur),
		NetBalanceDisplay:    domain.FormatMoney(snap.NetBalance, cur),
	}, nil
}

// fetchAll loads trips and gear concurrently. Either failure cancels the
// other fetch and is returned as-is.
func (s *StatsService) fetchAll(ctx context.Context) ([]domain.Trip, []domain.GearItem, error) {
	var (
		trips []domain.Trip
		gear  []domain.GearItem
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trips, err = s.trips.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		gear, err = s.gear.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return trips, gear, nil
}

// snapshot returns the memoized derived figures for the given collections,
// recomputing when the trip content fingerprint changed.
func (s *StatsService) snapshot(trips []domain.Trip, gear []domain.GearItem) Snapshot {
	key := stats.Fingerprint(trips)
	if snap, ok := s.cache.Get(key); ok && snap.GearCount == len(gear) {
		return snap
	}

	now := s.now()
	year := now.Year()

	count, expenses, income, net := stats.Totals(trips)
	currentNet, priorNet := stats.YearOverYearNetBalance(trips, year)

	var gearSpend decimal.Decimal
	for _, g := range gear {
		gearSpend = gearSpend.Add(g.Price)
	}

	snap := Snapshot{
		TripCount:             count,
		TotalExpenses:         expenses,
		TotalIncome:           income,
		NetBalance:            net,
		AverageExpensePerTrip: stats.AverageExpensePerTrip(trips),
		TripsThisYear:         stats.TripCountInYear(trips, year),
		YearExpenses:          stats.ExpensesInYear(trips, year),
		YearIncome:            stats.IncomeInYear(trips, year),
		CurrentYearNet:        currentNet,
		PriorYearNet:          priorNet,
		MonthlySeries:         stats.MonthlySeries(trips),
		TopLocationsByExpense: stats.TopLocationsByExpense(trips, topLocationLimit),
		TopLocationsByProfit:  stats.TopLocationsByProfit(trips, topLocationLimit),
		FishTally:             stats.CategoricalTally(trips, stats.FishTokens),
		WeatherTally:          stats.CategoricalTally(trips, stats.WeatherLabel),
		GearCount:             len(gear),
		GearSpend:             gearSpend,
	}
	snap.YearNetBalance = snap.YearIncome.Sub(snap.YearExpenses)

	s.cache.Put(key, snap)
	return snap
}
