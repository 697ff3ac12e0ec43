// Package stats is the aggregation engine: pure functions that transform
// an in-memory trip collection into the derived figures shown on the
// dashboard and embedded in exports. Nothing here mutates the record
// store or holds state; callers inject "now" where the calendar matters.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// MonthlyBucket is the expense/income aggregate for one calendar month.
// Key is "YYYY-MM"; lexicographic order of keys is chronological order.
type MonthlyBucket struct {
	Key      string          `json:"key"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

// MonthlySeries groups trips by calendar year+month of their date, summing
// expenses and income per group. Trips without a date are excluded.
// The result is sorted ascending by month key; empty input yields an
// empty (non-nil) slice.
func MonthlySeries(trips []domain.Trip) []MonthlyBucket {
	byKey := make(map[string]*MonthlyBucket)
	for _, t := range trips {
		if t.Date == nil {
			continue
		}
		key := t.Date.Format("2006-01")
		b, ok := byKey[key]
		if !ok {
			b = &MonthlyBucket{Key: key}
			byKey[key] = b
		}
		b.Expenses = b.Expenses.Add(t.TotalExpenses())
		b.Income = b.Income.Add(t.IncomeFromSale)
	}

	series := make([]MonthlyBucket, 0, len(byKey))
	for _, b := range byKey {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Key < series[j].Key })
	return series
}

// AverageExpensePerTrip returns the arithmetic mean of TotalExpenses over
// all trips (dated or not). Returns zero for empty input.
func AverageExpensePerTrip(trips []domain.Trip) decimal.Decimal {
	if len(trips) == 0 {
		return decimal.Zero
	}
	var total decimal.Decimal
	for _, t := range trips {
		total = total.Add(t.TotalExpenses())
	}
	return total.Div(decimal.NewFromInt(int64(len(trips))))
}

// TripCountInYear counts trips whose date falls in the given calendar
// year. Year membership is by calendar extraction, not elapsed time, so a
// trip on Dec 31 and one on Jan 1 land in different years.
func TripCountInYear(trips []domain.Trip, year int) int {
	n := 0
	for _, t := range trips {
		if t.Date != nil && t.Date.Year() == year {
			n++
		}
	}
	return n
}

// YearOverYearNetBalance returns the net-balance sums for year and year-1.
func YearOverYearNetBalance(trips []domain.Trip, year int) (current, prior decimal.Decimal) {
	for _, t := range trips {
		if t.Date == nil {
			continue
		}
		switch t.Date.Year() {
		case year:
			current = current.Add(t.NetBalance())
		case year - 1:
			prior = prior.Add(t.NetBalance())
		}
	}
	return current, prior
}

// ExpensesInMonth sums TotalExpenses over trips dated in the given
// calendar year+month. Used by the budget evaluator for "current month
// spend" with an injected now.
func ExpensesInMonth(trips []domain.Trip, year int, month int) decimal.Decimal {
	var total decimal.Decimal
	for _, t := range trips {
		if t.Date != nil && t.Date.Year() == year && int(t.Date.Month()) == month {
			total = total.Add(t.TotalExpenses())
		}
	}
	return total
}

// ExpensesInYear sums TotalExpenses over trips dated in the given year.
func ExpensesInYear(trips []domain.Trip, year int) decimal.Decimal {
	var total decimal.Decimal
	for _, t := range trips {
		if t.Date != nil && t.Date.Year() == year {
			total = total.Add(t.TotalExpenses())
		}
	}
	return total
}

// IncomeInYear sums IncomeFromSale over trips dated in the given year.
func IncomeInYear(trips []domain.Trip, year int) decimal.Decimal {
	var total decimal.Decimal
	for _, t := range trips {
		if t.Date != nil && t.Date.Year() == year {
			total = total.Add(t.IncomeFromSale)
		}
	}
	return total
}

// Totals returns the all-time trip count, expense sum, income sum, and
// net balance over every trip, dated or not. Both the dashboard summary
// and the PDF summary block read from here so the figures cannot drift.
func Totals(trips []domain.Trip) (count int, expenses, income, net decimal.Decimal) {
	for _, t := range trips {
		expenses = expenses.Add(t.TotalExpenses())
		income = income.Add(t.IncomeFromSale)
	}
	return len(trips), expenses, income, income.Sub(expenses)
}
