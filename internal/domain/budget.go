package domain

import "github.com/shopspring/decimal"

// BudgetSettings holds the user-configured spending and income thresholds.
// A zero value means "not set": no progress is computed for that threshold.
// Settings are supplied per request by the caller; they are not part of
// the record store.
type BudgetSettings struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	YearlyBudget  decimal.Decimal `json:"yearly_budget"`
	IncomeGoal    decimal.Decimal `json:"income_goal"`
}

// Validate rejects negative thresholds.
func (b BudgetSettings) Validate() error {
	if b.MonthlyBudget.IsNegative() || b.YearlyBudget.IsNegative() || b.IncomeGoal.IsNegative() {
		return ErrValidation
	}
	return nil
}
