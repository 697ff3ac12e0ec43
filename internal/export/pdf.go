package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/stats"
)

// Page geometry in millimeters for A4 portrait. When the vertical cursor
// passes pageBreakY a fresh page is started before the next line.
const (
	pageBreakY = 270.0
	lineHeight = 7.0
)

// WriteTripsPDF renders the full financial report: a title, a summary
// block (trip count and the three money totals), then one line per trip
// under "All Trips". Totals come from stats.Totals and money text from
// domain.FormatMoney, so the figures match the dashboard exactly.
//
// Returns domain.ErrNoData when trips is empty and domain.ErrWriteFailed
// when the destination cannot be written.
func WriteTripsPDF(w io.Writer, trips []domain.Trip, cur domain.Currency) error {
	if len(trips) == 0 {
		return fmt.Errorf("export.WriteTripsPDF: %w", domain.ErrNoData)
	}

	count, expenses, income, net := stats.Totals(trips)

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("My Fishing Finances"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, lineHeight, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, tr, fmt.Sprintf("Trips: %d", count))
	writeLine(pdf, tr, "Total Expenses: "+domain.FormatMoney(expenses, cur))
	writeLine(pdf, tr, "Total Income: "+domain.FormatMoney(income, cur))
	writeLine(pdf, tr, "Net Balance: "+domain.FormatMoney(net, cur))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, lineHeight, "All Trips", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	sorted := make([]domain.Trip, len(trips))
	copy(sorted, trips)
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

	for _, t := range sorted {
		line := fmt.Sprintf("%s - %s - %s",
			formatTripDate(t), t.DisplayLocation(), domain.FormatMoney(t.NetBalance(), cur))
		writeLine(pdf, tr, line)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export.WriteTripsPDF: %w: %v", domain.ErrWriteFailed, err)
	}
	return nil
}

// WriteTripSummaryPDF renders a one-page summary of a single trip:
// a title followed by five key-value lines.
func WriteTripSummaryPDF(w io.Writer, t domain.Trip, cur domain.Currency) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Trip Summary"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	writeLine(pdf, tr, "Location: "+t.DisplayLocation())
	writeLine(pdf, tr, "Date: "+formatTripDate(t))
	writeLine(pdf, tr, "Total Expenses: "+domain.FormatMoney(t.TotalExpenses(), cur))
	writeLine(pdf, tr, "Income: "+domain.FormatMoney(t.IncomeFromSale, cur))
	writeLine(pdf, tr, "Net Balance: "+domain.FormatMoney(t.NetBalance(), cur))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export.WriteTripSummaryPDF: %w: %v", domain.ErrWriteFailed, err)
	}
	return nil
}

// writeLine emits one text line, starting a new page first when the
// cursor has passed the near-bottom threshold.
func writeLine(pdf *fpdf.Fpdf, tr func(string) string, s string) {
	if pdf.GetY() > pageBreakY {
		pdf.AddPage()
	}
	pdf.CellFormat(0, lineHeight, tr(s), "", 1, "L", false, 0, "")
}

// formatTripDate renders the trip date, or a placeholder when unknown.
func formatTripDate(t domain.Trip) string {
	if t.Date == nil {
		return "Unknown Date"
	}
	return t.Date.Format("2006-01-02")
}
