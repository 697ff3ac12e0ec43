// Package budget evaluates user-set spending and income thresholds
// against aggregation-engine sums. Everything here is a pure read model:
// trips plus settings plus an injected now in, ratios and deltas out.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/stats"
)

// Progress is the evaluated state of all three thresholds for one moment
// in time. Ratios are clamped to [0,1]; a ratio is 0 whenever its
// threshold is unset (zero).
type Progress struct {
	MonthlyRatio float64 `json:"monthly_ratio"`
	YearlyRatio  float64 `json:"yearly_ratio"`
	IncomeRatio  float64 `json:"income_ratio"`

	// OverBudgetMonthly is max(0, current month spend - monthly budget).
	OverBudgetMonthly decimal.Decimal `json:"over_budget_monthly"`
	// RemainingMonthly is max(0, monthly budget - current month spend).
	RemainingMonthly decimal.Decimal `json:"remaining_monthly"`

	OverBudgetYearly decimal.Decimal `json:"over_budget_yearly"`
	RemainingYearly  decimal.Decimal `json:"remaining_yearly"`

	// GoalAchieved is true when the yearly income goal is set and met.
	GoalAchieved bool `json:"goal_achieved"`
}

// Evaluate computes all budget figures for the month and year containing
// now. Sums come from the stats package so the numbers agree with the
// dashboard and exports.
func Evaluate(trips []domain.Trip, settings domain.BudgetSettings, now time.Time) Progress {
	monthSpend := stats.ExpensesInMonth(trips, now.Year(), int(now.Month()))
	yearSpend := stats.ExpensesInYear(trips, now.Year())
	yearIncome := stats.IncomeInYear(trips, now.Year())

	return Progress{
		MonthlyRatio:      ratio(monthSpend, settings.MonthlyBudget),
		YearlyRatio:       ratio(yearSpend, settings.YearlyBudget),
		IncomeRatio:       ratio(yearIncome, settings.IncomeGoal),
		OverBudgetMonthly: overAmount(monthSpend, settings.MonthlyBudget),
		RemainingMonthly:  remainingAmount(monthSpend, settings.MonthlyBudget),
		OverBudgetYearly:  overAmount(yearSpend, settings.YearlyBudget),
		RemainingYearly:   remainingAmount(yearSpend, settings.YearlyBudget),
		GoalAchieved:      settings.IncomeGoal.IsPositive() && yearIncome.GreaterThanOrEqual(settings.IncomeGoal),
	}
}

// MonthlyProgress returns min(spend/budget, 1), or 0 when budget is unset.
func MonthlyProgress(trips []domain.Trip, monthlyBudget decimal.Decimal, now time.Time) float64 {
	return ratio(stats.ExpensesInMonth(trips, now.Year(), int(now.Month())), monthlyBudget)
}

// YearlyProgress returns min(yearSpend/budget, 1), or 0 when budget is unset.
func YearlyProgress(trips []domain.Trip, yearlyBudget decimal.Decimal, now time.Time) float64 {
	return ratio(stats.ExpensesInYear(trips, now.Year()), yearlyBudget)
}

// IncomeProgress returns min(yearIncome/goal, 1), or 0 when goal is unset.
func IncomeProgress(trips []domain.Trip, incomeGoal decimal.Decimal, now time.Time) float64 {
	return ratio(stats.IncomeInYear(trips, now.Year()), incomeGoal)
}

// ratio computes actual/threshold clamped to [0,1]. A zero or negative
// threshold means "not set" and yields 0 — never a division by zero.
func ratio(actual, threshold decimal.Decimal) float64 {
	if !threshold.IsPositive() {
		return 0
	}
	r := actual.Div(threshold).InexactFloat64()
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

func overAmount(spend, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	if d := spend.Sub(budget); d.IsPositive() {
		return d
	}
	return decimal.Zero
}

func remainingAmount(spend, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	if d := budget.Sub(spend); d.IsPositive() {
		return d
	}
	return decimal.Zero
}
