// Package domain contains the core data types for the Fishing Logbook
// application. This package has zero dependencies on the other internal
// packages and is imported by every one of them (repo, stats, budget,
// export, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownLocation is the display name used for trips whose location
// field is blank or was never filled in.
const UnknownLocation = "Unknown Location"

// WeatherConditions is the closed set of weather labels a trip may carry.
// The empty string means "not recorded" and is valid everywhere.
var WeatherConditions = []string{
	"Sunny", "Cloudy", "Rainy", "Windy", "Snowy", "Foggy", "Stormy",
}

// Trip represents a single fishing outing with its itemized costs,
// income from catch sales, and catch metadata.
type Trip struct {
	ID uuid.UUID `json:"id"`

	// Date is the calendar date of the outing. Nil means the date is
	// unknown; such trips are excluded from all date-bucketed
	// aggregations and skipped by exports that require a date column.
	Date *time.Time `json:"date,omitempty"`

	// Location is the free-text spot name. Blank values display as
	// UnknownLocation but are stored as-is.
	Location string `json:"location,omitempty"`

	Fuel       decimal.Decimal `json:"fuel"`
	Bait       decimal.Decimal `json:"bait"`
	License    decimal.Decimal `json:"license"`
	BoatRental decimal.Decimal `json:"boat_rental"`
	Food       decimal.Decimal `json:"food"`
	Other      decimal.Decimal `json:"other"`

	// IncomeFromSale is the money earned selling the catch. Never negative.
	IncomeFromSale decimal.Decimal `json:"income_from_sale"`

	Notes string `json:"notes,omitempty"`

	// FishCaught is a comma-separated list of species names, e.g.
	// "Bass, Trout". Tokenization rules live in the stats package.
	FishCaught string `json:"fish_caught,omitempty"`

	// Weather is one of WeatherConditions, or empty when not recorded.
	Weather string `json:"weather,omitempty"`

	// TemperatureC is the recorded temperature in degrees. Nil means
	// "not recorded"; an explicit zero means zero degrees.
	TemperatureC *float64 `json:"temperature_c,omitempty"`

	// Photo is an optional bounded-size image blob. The core never
	// inspects its contents.
	Photo []byte `json:"photo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalExpenses returns the sum of the six expense fields.
// Computed on read, never stored.
func (t Trip) TotalExpenses() decimal.Decimal {
	return decimal.Sum(t.Fuel, t.Bait, t.License, t.BoatRental, t.Food, t.Other)
}

// NetBalance returns income minus total expenses. May be negative.
func (t Trip) NetBalance() decimal.Decimal {
	return t.IncomeFromSale.Sub(t.TotalExpenses())
}

// DisplayLocation returns the location name with blanks coalesced to
// UnknownLocation. Grouping and display always use this form.
func (t Trip) DisplayLocation() string {
	if t.Location == "" {
		return UnknownLocation
	}
	return t.Location
}

// ValidWeather reports whether s is empty or a member of WeatherConditions.
func ValidWeather(s string) bool {
	if s == "" {
		return true
	}
	for _, w := range WeatherConditions {
		if s == w {
			return true
		}
	}
	return false
}
