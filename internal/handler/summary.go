package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/pkordes/commute-stats/internal/analysis"
	"github.com/pkordes/commute-stats/internal/domain"
	"github.com/pkordes/commute-stats/internal/store"
)

// GetSummary handles GET /api/summary.
// Returns the full structured analysis of the startup dataset as JSON.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.summary)
}

// GetReport handles GET /api/report.
// Returns the rendered text report for the startup dataset.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, s.report) //nolint:errcheck
}

// GetLifetime handles GET /api/lifetime.
// Returns lifetime totals over the full startup activity history.
func (s *Server) GetLifetime(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.lifetime)
}

// PostAnalyze handles POST /api/analyze.
// The body is a JSON array of raw activity records in the upstream format;
// the response is the analysis.Summary for those records under the server's
// configured start year and time zone. Malformed records are a 422, a body
// that is not valid JSON is a 400.
func (s *Server) PostAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", "failed to read request body")
		return
	}

	activities, err := store.Parse(body)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedRecord) {
			writeError(w, http.StatusUnprocessableEntity, "malformed_record", unwrapMessage(err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", "request body is not a JSON activity array")
		return
	}

	summary := analysis.New(activities, s.startYear, s.loc).Summary()
	writeJSON(w, http.StatusOK, summary)
}
