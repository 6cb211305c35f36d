package responses

import (
	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

// ScheduleResponse carries one simulation. Timeline, Processes and Metrics are null
// when there was nothing to schedule.
type ScheduleResponse struct {
	RunID     uuid.UUID               `json:"runId"`
	Algorithm string                  `json:"algorithm"`
	Quantum   int                     `json:"quantum,omitempty"`
	Timeline  []core.Segment          `json:"timeline"`
	Processes []core.CompletedProcess `json:"processes"`
	Metrics   *core.SystemMetrics     `json:"metrics"`
}

type ComparisonResponse struct {
	RunID   uuid.UUID                   `json:"runId"`
	Quantum int                         `json:"quantum"`
	Results map[string]ScheduleResponse `json:"results"`
	Errors  map[string]string           `json:"errors,omitempty"`
}

func NewScheduleResponse(runID uuid.UUID, algorithm core.Algorithm, quantum int, result *schedulers.Result) ScheduleResponse {
	response := ScheduleResponse{
		RunID:     runID,
		Algorithm: algorithm.String(),
	}
	if algorithm == core.RoundRobin {
		response.Quantum = max(quantum, 1)
	}
	if result == nil {
		return response
	}
	metrics := result.Metrics
	response.Algorithm = result.Algorithm.String()
	response.Timeline = result.Timeline
	response.Processes = result.Processes
	response.Metrics = &metrics
	return response
}

// NewComparisonResponse splits outcomes into results and per-algorithm errors.
func NewComparisonResponse(runID uuid.UUID, quantum int, outcomes map[core.Algorithm]schedulers.Outcome) ComparisonResponse {
	response := ComparisonResponse{
		RunID:   runID,
		Quantum: max(quantum, 1),
		Results: make(map[string]ScheduleResponse, len(outcomes)),
	}
	for algorithm, outcome := range outcomes {
		if outcome.Err != nil {
			response.AddError(algorithm.String(), outcome.Err)
			continue
		}
		response.Results[algorithm.String()] = NewScheduleResponse(runID, algorithm, quantum, outcome.Result)
	}
	return response
}

func (r *ComparisonResponse) AddError(algorithm string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Errors[algorithm] = err.Error()
}
