package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency selects the symbol appended to formatted monetary amounts.
// No conversion between currencies happens anywhere in the system.
type Currency struct {
	// Code is one of "USD", "EUR", "GBP", "RUB", or "CUSTOM".
	Code string
	// Symbol overrides the built-in symbol when Code is "CUSTOM".
	Symbol string
}

// currencySymbols maps the four built-in currency codes to their symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"RUB": "₽",
}

// USD is the default currency setting.
var USD = Currency{Code: "USD"}

// NewCurrency builds a Currency from a code and an optional custom symbol.
// Unrecognized codes with a non-empty symbol become a custom currency;
// unrecognized codes without one fall back to USD.
func NewCurrency(code, symbol string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := currencySymbols[code]; ok {
		return Currency{Code: code}
	}
	if symbol != "" {
		return Currency{Code: "CUSTOM", Symbol: symbol}
	}
	return USD
}

// DisplaySymbol returns the symbol for this currency.
func (c Currency) DisplaySymbol() string {
	if s, ok := currencySymbols[c.Code]; ok {
		return s
	}
	if c.Symbol != "" {
		return c.Symbol
	}
	return currencySymbols["USD"]
}

// FormatMoney renders amount with exactly two decimal digits, strips a
// literal trailing ".00" so whole amounts display without decimals, then
// appends a space and the currency symbol. Negative amounts keep their
// leading minus sign:
//
//	FormatMoney(10, USD)    == "10 $"
//	FormatMoney(10.5, USD)  == "10.50 $"
//	FormatMoney(-5, USD)    == "-5 $"
//
// This is the single source of monetary text for the dashboard and both
// export paths; exported figures match on-screen figures by construction.
func FormatMoney(amount decimal.Decimal, c Currency) string {
	s := amount.StringFixed(2)
	s = strings.TrimSuffix(s, ".00")
	return s + " " + c.DisplaySymbol()
}
