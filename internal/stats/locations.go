package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// LocationTotal is one row of a location ranking.
type LocationTotal struct {
	Location string          `json:"location"`
	Total    decimal.Decimal `json:"total"`
}

// TopLocationsByExpense ranks locations by total expenses, descending.
// Blank locations group under domain.UnknownLocation. Ties break on
// location name ascending so the ranking is reproducible. A limit <= 0
// returns all locations.
func TopLocationsByExpense(trips []domain.Trip, limit int) []LocationTotal {
	return rankLocations(trips, limit, func(t domain.Trip) decimal.Decimal {
		return t.TotalExpenses()
	})
}

// TopLocationsByProfit ranks locations by summed net balance, descending.
// Totals may be negative. Same grouping and tie-break rules as
// TopLocationsByExpense.
func TopLocationsByProfit(trips []domain.Trip, limit int) []LocationTotal {
	return rankLocations(trips, limit, func(t domain.Trip) decimal.Decimal {
		return t.NetBalance()
	})
}

func rankLocations(trips []domain.Trip, limit int, value func(domain.Trip) decimal.Decimal) []LocationTotal {
	byLocation := make(map[string]decimal.Decimal)
	for _, t := range trips {
		name := t.DisplayLocation()
		byLocation[name] = byLocation[name].Add(value(t))
	}

	ranked := make([]LocationTotal, 0, len(byLocation))
	for name, total := range byLocation {
		ranked = append(ranked, LocationTotal{Location: name, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Total.Equal(ranked[j].Total) {
			return ranked[i].Total.GreaterThan(ranked[j].Total)
		}
		return ranked[i].Location < ranked[j].Location
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
