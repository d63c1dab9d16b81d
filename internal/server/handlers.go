package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"StrategyScope/internal/analysis"
	"StrategyScope/internal/collector"
	"StrategyScope/internal/model"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "strategy-scope",
	})
}

func (s *Server) handleListMetrics(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"metrics": model.MetricTypes()})
}

// handleMetric classifies a single value. Unknown metric keys get the placeholder analysis.
func (s *Server) handleMetric(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("value")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "value query parameter is required")
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("value %q is not a finite number", raw))
		return
	}
	s.writeJSON(w, http.StatusOK, analysis.GetMetricAnalysis(chi.URLParam(r, "metric"), v))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	m, ok := s.decodeMetrics(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, analysis.Evaluate(m))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	m, ok := s.decodeMetrics(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, analysis.AnalyzeStrategyProfile(*m))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	errs := collector.ValidateDocument(data)
	if errs == nil {
		errs = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

func (s *Server) handleStrategyReport(w http.ResponseWriter, r *http.Request) {
	rep, _, err := s.svc.Analyze(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleStrategyHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("limit %q must be a non-negative integer", raw))
			return
		}
		limit = n
	}
	hist, err := s.svc.History(chi.URLParam(r, "id"), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"history": hist})
}

func (s *Server) decodeMetrics(w http.ResponseWriter, r *http.Request) (*model.StrategyMetrics, bool) {
	var m model.StrategyMetrics
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return nil, false
	}
	if err := m.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &m, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, collector.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidMetrics), errors.Is(err, collector.ErrInvalidStrategyID):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Msg("request failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
