package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// GetDashboard handles GET /stats/dashboard.
// Budget thresholds and currency are per-request query parameters:
// ?monthly_budget= ?yearly_budget= ?income_goal= ?currency= ?symbol=.
// Omitted thresholds count as unset; an unrecognized currency without a
// symbol falls back to USD.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	settings, err := budgetFromQuery(r)
	if err != nil {
		requestError(w, "budget thresholds must be decimal numbers")
		return
	}
	cur := currencyFromQuery(r)

	dash, err := s.stats.Dashboard(r.Context(), settings, cur)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dash)
}

// budgetFromQuery parses the three optional budget thresholds. Missing or
// empty parameters stay zero (unset); malformed ones are an error rather
// than silently unset, so the caller learns about the typo.
func budgetFromQuery(r *http.Request) (domain.BudgetSettings, error) {
	var settings domain.BudgetSettings
	for _, p := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"monthly_budget", &settings.MonthlyBudget},
		{"yearly_budget", &settings.YearlyBudget},
		{"income_goal", &settings.IncomeGoal},
	} {
		v := r.URL.Query().Get(p.name)
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return domain.BudgetSettings{}, err
		}
		*p.dst = d
	}
	return settings, nil
}

// currencyFromQuery reads ?currency= and ?symbol=. Defaults to USD.
func currencyFromQuery(r *http.Request) domain.Currency {
	q := r.URL.Query()
	return domain.NewCurrency(q.Get("currency"), q.Get("symbol"))
}
