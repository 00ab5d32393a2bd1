// Package handler implements the HTTP handlers for the commute stats API.
// All handlers are methods on Server. The dataset is loaded and classified
// once at startup (batch model), so every GET handler serves precomputed
// read-only values and is safe under concurrent requests.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/commute-stats/internal/analysis"
)

// Server holds the precomputed results of one analysis run plus the
// settings needed to run ad-hoc analyses for POST /api/analyze.
type Server struct {
	summary  analysis.Summary
	lifetime analysis.LifetimeStats
	report   string

	startYear int
	loc       *time.Location
}

// NewServer constructs the Server from one completed analysis run.
// startYear and loc are reused for ad-hoc analyses of posted records.
func NewServer(summary analysis.Summary, lifetime analysis.LifetimeStats, report string, startYear int, loc *time.Location) *Server {
	return &Server{
		summary:   summary,
		lifetime:  lifetime,
		report:    report,
		startYear: startYear,
		loc:       loc,
	}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.GetSummary)
		r.Get("/report", s.GetReport)
		r.Get("/lifetime", s.GetLifetime)
		r.Post("/analyze", s.PostAnalyze)
	})
	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
