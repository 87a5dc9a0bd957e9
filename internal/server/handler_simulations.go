package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/me/cpusched/internal/engine"
	"github.com/me/cpusched/pkg/model"
)

type simulateRequest struct {
	Policy    string              `json:"policy"`
	Quantum   int                 `json:"quantum"`
	Processes []model.ProcessSpec `json:"processes"`
}

type compareRequest struct {
	Quantum   int                 `json:"quantum"`
	Processes []model.ProcessSpec `json:"processes"`
}

type policySummary struct {
	Policy        model.Policy `json:"policy"`
	AvgWaiting    float64      `json:"avg_waiting_time"`
	AvgTurnaround float64      `json:"avg_turnaround_time"`
	AvgResponse   float64      `json:"avg_response_time"`
	TotalTime     int          `json:"total_time"`
}

type compareResponse struct {
	Results map[string]*model.SimulationResult `json:"results"`
	Summary []policySummary                    `json:"summary"`
}

func (s *Server) handleCreateSimulation(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}

	policy, err := model.ParsePolicy(req.Policy)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError(err.Error(), model.FieldError{Field: "policy", Message: err.Error()}))
		return
	}
	if fieldErrs := model.ValidateProcesses(req.Processes); fieldErrs != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid process set", fieldErrs...))
		return
	}

	quantum := req.Quantum
	if policy.NeedsQuantum() {
		if quantum == 0 {
			quantum = s.config.DefaultQuantum
		}
		if quantum <= 0 {
			respondError(w, reqID, http.StatusBadRequest,
				model.NewValidationError("invalid quantum",
					model.FieldError{Field: "quantum", Message: "quantum must be a positive integer"}))
			return
		}
	}

	res, err := s.simulate(req.Processes, policy, quantum)
	if err != nil {
		s.respondEngineError(w, reqID, err)
		return
	}

	s.logger.Debug("simulation complete",
		"policy", policy,
		"processes", len(req.Processes),
		"total_time", res.Metrics.TotalTime,
		"request_id", reqID,
	)
	respondOK(w, reqID, res)
}

func (s *Server) handleCompareSimulations(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}
	if fieldErrs := model.ValidateProcesses(req.Processes); fieldErrs != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid process set", fieldErrs...))
		return
	}

	quantum := req.Quantum
	if quantum == 0 {
		quantum = s.config.DefaultQuantum
	}
	if quantum <= 0 {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid quantum",
				model.FieldError{Field: "quantum", Message: "quantum must be a positive integer"}))
		return
	}

	out := compareResponse{Results: make(map[string]*model.SimulationResult, len(model.AllPolicies()))}
	for _, policy := range model.AllPolicies() {
		res, err := s.simulate(req.Processes, policy, quantum)
		if err != nil {
			s.respondEngineError(w, reqID, err)
			return
		}
		out.Results[policy.String()] = res
		out.Summary = append(out.Summary, policySummary{
			Policy:        policy,
			AvgWaiting:    res.Metrics.AvgWaiting,
			AvgTurnaround: res.Metrics.AvgTurnaround,
			AvgResponse:   res.Metrics.AvgResponse,
			TotalTime:     res.Metrics.TotalTime,
		})
	}
	respondOK(w, reqID, out)
}

// simulate normalizes priorities for non-priority policies and runs the
// engine.
func (s *Server) simulate(specs []model.ProcessSpec, policy model.Policy, quantum int) (*model.SimulationResult, error) {
	return engine.Simulate(model.NormalizeForPolicy(specs, policy), policy, quantum)
}

// respondEngineError maps engine sentinel errors to API errors. Validation
// runs before dispatch, so anything surfacing here that still matches a
// sentinel indicates a request the validators let through.
func (s *Server) respondEngineError(w http.ResponseWriter, reqID string, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidQuantum), errors.Is(err, engine.ErrNoProcesses), errors.Is(err, engine.ErrUnknownPolicy):
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError(err.Error()))
	default:
		s.logger.Error("simulation failed", "error", err, "request_id", reqID)
		respondError(w, reqID, http.StatusInternalServerError, &model.APIError{
			Code:    model.ErrInternal,
			Message: "simulation failed",
		})
	}
}
