package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// Artifact filename templates. The numeric component is a unix timestamp,
// so successive exports never collide at one-second granularity or above.
const (
	csvNamePattern     = "Fishing_Trips_Export_%d.csv"
	pdfNamePattern     = "My_Fishing_Finances_%d.pdf"
	summaryNamePattern = "trip_summary_%d.pdf"
)

// CSVFilename returns the artifact name for a full CSV export at now.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf(csvNamePattern, now.Unix())
}

// PDFFilename returns the artifact name for a full PDF report at now.
func PDFFilename(now time.Time) string {
	return fmt.Sprintf(pdfNamePattern, now.Unix())
}

// SummaryFilename returns the artifact name for a single-trip PDF at now.
func SummaryFilename(now time.Time) string {
	return fmt.Sprintf(summaryNamePattern, now.Unix())
}

// Store persists finished export artifacts to a temporary directory and
// sweeps stale ones. The consumer serves the bytes and may delete the
// file after use; the sweep catches whatever remains.
type Store struct {
	dir string
	log *slog.Logger
}

// NewStore creates the artifact directory if needed and returns a Store.
func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export.NewStore: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the artifact directory.
func (s *Store) Dir() string {
	return s.dir
}

// Write persists data under filename and returns its absolute path.
// Failures wrap domain.ErrWriteFailed — callers surface them to the user.
func (s *Store) Write(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export.Store.Write: %w: %v", domain.ErrWriteFailed, err)
	}
	return path, nil
}

// Sweep removes artifacts whose modification time is older than maxAge.
// It is best-effort: every failure is logged and swallowed, never
// returned, so a broken sweep can never fail an export request.
func (s *Store) Sweep(maxAge time.Duration) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warn("artifact sweep: read dir failed", "dir", s.dir, "error", err)
		return
	}

	cutoff := time.Now().Add(-maxAge)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			s.log.Warn("artifact sweep: stat failed", "name", e.Name(), "error", err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if err := os.Remove(path); err != nil {
			s.log.Warn("artifact sweep: remove failed", "path", path, "error", err)
			continue
		}
		s.log.Info("artifact sweep: removed stale export", "path", path, "age", time.Since(info.ModTime()).Round(time.Minute))
	}
}
