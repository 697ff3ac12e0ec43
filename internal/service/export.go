package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/export"
	"github.com/anglerlog/anglerlog/internal/repo"
)

// ArtifactWriter persists a rendered export and returns its path.
// *export.Store is the production implementation; tests substitute a stub.
type ArtifactWriter interface {
	Write(filename string, data []byte) (string, error)
}

// ExportService renders the trip collection into CSV and PDF artifacts.
// It is a read-only consumer of the record store; serialization itself is
// pure and the only I/O is the final artifact write.
type ExportService struct {
	trips repo.TripRepo
	store ArtifactWriter
	now   func() time.Time
	log   *slog.Logger
}

// NewExportService constructs an ExportService. now is injected so tests
// can pin the artifact timestamps.
func NewExportService(trips repo.TripRepo, store ArtifactWriter, now func() time.Time, log *slog.Logger) *ExportService {
	return &ExportService{trips: trips, store: store, now: now, log: log}
}

// ExportCSV renders all trips to CSV and persists the artifact.
// Returns domain.ErrNoData when there are no trips at all.
func (s *ExportService) ExportCSV(ctx context.Context) (domain.Artifact, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("service.ExportService.ExportCSV: %w", err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, trips, s.log); err != nil {
		return domain.Artifact{}, fmt.Errorf("service.ExportService.ExportCSV: %w", err)
	}

	return s.persist(export.CSVFilename(s.now()), "text/csv; charset=utf-8", buf.Bytes())
}

// ExportPDF renders the full financial report and persists the artifact.
func (s *ExportService) ExportPDF(ctx context.Context, cur domain.Currency) (domain.Artifact, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("service.ExportService.ExportPDF: %w", err)
	}

	var buf bytes.Buffer
	if err := export.WriteTripsPDF(&buf, trips, cur); err != nil {
		return domain.Artifact{}, fmt.Errorf("service.ExportService.ExportPDF: %w", err)
	}

	return s.persist(export.PDFFilename(s.now()), "application/pdf", buf.Bytes())
}

// ExportTripSummary renders a one-page PDF for a single trip.
// Returns domain.ErrNotFound when the trip does not exist.
func (s *ExportService) ExportTripSummary(ctx context.Context, id uuid.UUID, cur domain.Currency) (domain.Artifact, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("service.ExportService.ExportTripSummary: %w", err)
	}

	var buf bytes.Buffer
	if err := export.WriteTripSummaryPDF(&buf, trip, cur); err != nil {
		return domain.Artifact{}, fmt.Errorf("service.ExportService.ExportTripSummary: %w", err)
	}

	return s.persist(export.SummaryFilename(s.now()), "application/pdf", buf.Bytes())
}

func (s *ExportService) persist(filename, contentType string, data []byte) (domain.Artifact, error) {
	path, err := s.store.Write(filename, data)
	if err != nil {
		return domain.Artifact{}, err
	}
	return domain.Artifact{
		Filename:    filename,
		Path:        path,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}
