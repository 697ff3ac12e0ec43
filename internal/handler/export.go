// Package handler — export.go serves finished export artifacts.
// GET /export renders all trips as CSV (?format=csv, the default) or as a
// PDF report (?format=pdf). GET /trips/{id}/export renders a one-page PDF
// summary of a single trip.
package handler

import (
	"net/http"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// GetExport handles GET /export.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var (
		artifact domain.Artifact
		err      error
	)

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		artifact, err = s.exports.ExportCSV(r.Context())
	case "pdf":
		artifact, err = s.exports.ExportPDF(r.Context(), currencyFromQuery(r))
	default:
		requestError(w, "format must be csv or pdf")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	serveArtifact(w, r, artifact)
}

// ExportTripSummary handles GET /trips/{id}/export.
func (s *Server) ExportTripSummary(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		requestError(w, "invalid trip id")
		return
	}

	artifact, err := s.exports.ExportTripSummary(r.Context(), id, currencyFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	serveArtifact(w, r, artifact)
}

// serveArtifact streams a written export file as a download. The artifact
// already lives on disk; the background sweep removes it later.
func serveArtifact(w http.ResponseWriter, r *http.Request, a domain.Artifact) {
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+a.Filename+`"`)
	http.ServeFile(w, r, a.Path)
}
