// Package export renders the trip collection into portable artifacts:
// a CSV text document and paginated PDF reports. All derived totals come
// from the stats package — the same functions the dashboard uses — so
// exported figures always match displayed figures.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// csvHeaders defines the 15 column names written as the first row of the
// CSV export, in fixed order.
var csvHeaders = []string{
	"Date", "Location", "Fuel", "Bait", "License", "Boat Rental", "Food",
	"Other Expenses", "Total Expenses", "Income", "Net Balance",
	"Fish Caught", "Weather", "Temperature", "Notes",
}

// WriteCSV renders trips as a UTF-8 CSV document, newest date first.
//
// Free-text fields are sanitized instead of quoted: commas become
// semicolons and newlines in notes become single spaces. This is a
// deliberate simplification over RFC 4180 — every row always splits into
// exactly 15 fields on a plain comma. Numeric fields carry full decimal
// precision with no symbol or grouping.
//
// Trips without a date are skipped and logged, never fatal. An empty
// input collection returns domain.ErrNoData; a destination failure
// returns domain.ErrWriteFailed.
func WriteCSV(w io.Writer, trips []domain.Trip, log *slog.Logger) error {
	if len(trips) == 0 {
		return fmt.Errorf("export.WriteCSV: %w", domain.ErrNoData)
	}

	sorted := make([]domain.Trip, len(trips))
	copy(sorted, trips)
	// Newest first; undated trips sort last and are skipped below.
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Date, sorted[j].Date
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.After(*dj)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("export.WriteCSV: %w: %v", domain.ErrWriteFailed, err)
	}
	for _, t := range sorted {
		if t.Date == nil {
			log.Warn("skipping trip without date in CSV export", "trip_id", t.ID)
			continue
		}
		if err := cw.Write(csvRecord(t)); err != nil {
			return fmt.Errorf("export.WriteCSV: %w: %v", domain.ErrWriteFailed, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w: %v", domain.ErrWriteFailed, err)
	}
	return nil
}

// csvRecord encodes one dated trip as a flat 15-field record.
func csvRecord(t domain.Trip) []string {
	return []string{
		t.Date.Format("2006-01-02"),
		sanitizeField(t.DisplayLocation()),
		t.Fuel.String(),
		t.Bait.String(),
		t.License.String(),
		t.BoatRental.String(),
		t.Food.String(),
		t.Other.String(),
		t.TotalExpenses().String(),
		t.IncomeFromSale.String(),
		t.NetBalance().String(),
		sanitizeField(t.FishCaught),
		sanitizeField(t.Weather),
		formatTemperature(t.TemperatureC),
		sanitizeNotes(t.Notes),
	}
}

// sanitizeField replaces commas with semicolons so the cell never spawns
// an extra column when split naively.
func sanitizeField(s string) string {
	return strings.ReplaceAll(s, ",", ";")
}

// sanitizeNotes additionally folds newlines into single spaces.
func sanitizeNotes(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return sanitizeField(s)
}

// formatTemperature renders the optional temperature, empty when not
// recorded. An explicit zero renders as "0".
func formatTemperature(t *float64) string {
	if t == nil {
		return ""
	}
	return strconv.FormatFloat(*t, 'f', -1, 64)
}
