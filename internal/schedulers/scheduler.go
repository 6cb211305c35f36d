package schedulers

import (
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
)

const DefaultQuantum = 2

// Options tunes the engines. A zero Quantum is treated as absent and means
// DefaultQuantum; any other value below 1 is clamped to 1.
type Options struct {
	Quantum int `json:"quantum"`
}

// Result is the outcome of one simulation. Every call returns fresh slices.
type Result struct {
	Algorithm core.Algorithm          `json:"algorithm"`
	Timeline  []core.Segment          `json:"timeline"`
	Processes []core.CompletedProcess `json:"processes"`
	Metrics   core.SystemMetrics      `json:"metrics"`
}

type engine func(processes []core.Process, opts Options) (*Result, error)

var engines = map[core.Algorithm]engine{
	core.FCFS: func(p []core.Process, _ Options) (*Result, error) {
		return ScheduleFirstComeFirstServe(p)
	},
	core.SJF: func(p []core.Process, _ Options) (*Result, error) {
		return ScheduleShortestJobFirst(p)
	},
	core.SRTF: func(p []core.Process, _ Options) (*Result, error) {
		return ScheduleShortestRemainingTimeFirst(p)
	},
	core.RoundRobin: func(p []core.Process, opts Options) (*Result, error) {
		if opts.Quantum == 0 {
			opts.Quantum = DefaultQuantum
		}
		return ScheduleRoundRobin(p, opts.Quantum)
	},
	core.PriorityNP: func(p []core.Process, _ Options) (*Result, error) {
		return SchedulePriority(p)
	},
	core.PriorityP: func(p []core.Process, _ Options) (*Result, error) {
		return SchedulePriorityPreemptive(p)
	},
}

// Run simulates processes under algorithm. Empty input yields a nil result and no error.
// An algorithm outside the supported set falls back to FCFS.
func Run(algorithm core.Algorithm, processes []core.Process, opts Options) (*Result, error) {
	if len(processes) == 0 {
		return nil, nil
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}

	run, ok := engines[algorithm]
	if !ok {
		slog.Warn("unknown algorithm, falling back to fcfs", "algorithm", int(algorithm))
		run = engines[core.FCFS]
	}
	return run(processes, opts)
}

// RunByName resolves an external algorithm id and runs it, falling back to FCFS
// when the id is not recognised.
func RunByName(name string, processes []core.Process, opts Options) (*Result, error) {
	algorithm, err := core.ParseAlgorithm(name)
	if err != nil {
		slog.Warn("unknown algorithm, falling back to fcfs", "algorithm", name)
		algorithm = core.FCFS
	}
	return Run(algorithm, processes, opts)
}

// Validate checks the input shape every engine relies on.
func Validate(processes []core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.ID == "" {
			return fmt.Errorf("%w: process %d has no id", core.ErrInvalidProcess, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", core.ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s has negative arrival time %d", core.ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: %s has burst time %d, want >= 1", core.ErrInvalidProcess, p.ID, p.BurstTime)
		}
	}
	return nil
}

func divergence(algorithm core.Algorithm, now, bound int) error {
	return fmt.Errorf("%w: %s reached t=%d, bound %d", core.ErrSimulationDivergence, algorithm, now, bound)
}
