package schedulers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cpu-scheduler/internal/core"
)

// Outcome is the per-algorithm result of CompareAll. Exactly one of Result or Err is
// meaningful; Result is nil with a nil Err for empty input.
type Outcome struct {
	Result *Result
	Err    error
}

// CompareAll runs every algorithm in algorithms over its own copy of processes.
// With no algorithms it runs all six. A failing algorithm only affects its own outcome.
func CompareAll(ctx context.Context, processes []core.Process, opts Options, algorithms ...core.Algorithm) map[core.Algorithm]Outcome {
	if len(algorithms) == 0 {
		algorithms = core.Algorithms()
	}

	outcomes := make(map[core.Algorithm]Outcome, len(algorithms))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, algorithm := range algorithms {
		mu.Lock()
		_, seen := outcomes[algorithm]
		if !seen {
			outcomes[algorithm] = Outcome{}
		}
		mu.Unlock()
		if seen {
			continue
		}

		wg.Add(1)
		go func(algorithm core.Algorithm, input []core.Process) {
			defer wg.Done()
			outcome := runIsolated(ctx, algorithm, input, opts)
			if outcome.Err != nil {
				slog.Error("algorithm failed during comparison", "algorithm", algorithm.String(), "error", outcome.Err)
			}
			mu.Lock()
			outcomes[algorithm] = outcome
			mu.Unlock()
		}(algorithm, cloneProcesses(processes))
	}

	wg.Wait()
	return outcomes
}

func runIsolated(ctx context.Context, algorithm core.Algorithm, processes []core.Process, opts Options) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Err: fmt.Errorf("%s: panic: %v", algorithm, r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Outcome{Err: err}
	}
	result, err := Run(algorithm, processes, opts)
	return Outcome{Result: result, Err: err}
}

func cloneProcesses(processes []core.Process) []core.Process {
	if processes == nil {
		return nil
	}
	clone := make([]core.Process, len(processes))
	copy(clone, processes)
	return clone
}
