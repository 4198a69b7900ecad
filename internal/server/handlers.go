package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carefund/carecalc/internal/calculation"
	"github.com/carefund/carecalc/internal/directory"
	"github.com/carefund/carecalc/internal/domain"
	"github.com/carefund/carecalc/pkg/dateutil"
)

// assessmentResponse wraps the engine result with a service-assigned id.
// The id is minted here, not in the engine, which stays deterministic.
type assessmentResponse struct {
	CalculationID string                           `json:"calculation_id"`
	Result        *domain.FundingEligibilityResult `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req domain.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	now := time.Now().UTC()
	thresholds, err := s.registry.ThresholdsFor(now)
	if err != nil {
		s.metrics.AssessmentFailures.WithLabelValues("threshold_unavailable").Inc()
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	start := time.Now()
	result, err := s.engine.Assess(&req, thresholds, now)
	s.metrics.AssessmentDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var verr *calculation.ValidationError
		if errors.As(err, &verr) {
			s.metrics.AssessmentFailures.WithLabelValues("validation").Inc()
			s.writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.metrics.AssessmentFailures.WithLabelValues("internal").Inc()
		s.logger.Error("assessment failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "assessment failed")
		return
	}

	s.metrics.AssessmentsTotal.WithLabelValues(string(result.LASupport.FundingCategory)).Inc()
	s.writeJSON(w, http.StatusOK, assessmentResponse{
		CalculationID: uuid.NewString(),
		Result:        result,
	})
}

func (s *Server) handleThresholds(w http.ResponseWriter, r *http.Request) {
	at := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dateutil.ParseDate(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		at = parsed
	}
	thresholds, err := s.registry.ThresholdsFor(at)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, thresholds)
}

func (s *Server) handleDisregards(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.registry.Catalog().AllRules())
}

func (s *Server) handleAuthorityLookup(w http.ResponseWriter, r *http.Request) {
	postcode := chi.URLParam(r, "postcode")
	authority, err := s.directory.Lookup(postcode)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, authority)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
