package requests

import "cpu-scheduler/internal/core"

type ScheduleRequest struct {
	Algorithm string         `json:"algorithm,omitempty"`
	Quantum   int            `json:"quantum,omitempty"`
	Processes []core.Process `json:"processes"`
}

type CompareRequest struct {
	Algorithms []string       `json:"algorithms,omitempty"`
	Quantum    int            `json:"quantum,omitempty"`
	Processes  []core.Process `json:"processes"`
}

// QuantumOr returns the requested quantum, or fallback when none was given.
// Negative values are passed through so the engine can clamp them.
func (r ScheduleRequest) QuantumOr(fallback int) int {
	if r.Quantum == 0 {
		return fallback
	}
	return r.Quantum
}

func (r CompareRequest) QuantumOr(fallback int) int {
	if r.Quantum == 0 {
		return fallback
	}
	return r.Quantum
}
