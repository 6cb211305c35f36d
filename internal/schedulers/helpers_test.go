package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func job(id string, arrival, burst int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func prioritized(id string, arrival, burst, priority int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: priority}
}

func seg(id string, start, end int) core.Segment {
	return core.Segment{ProcessID: id, Start: start, End: end}
}

func assertTimeline(t *testing.T, want []core.Segment, result *Result) {
	t.Helper()
	require.NotNil(t, result)
	if diff := cmp.Diff(want, result.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func completed(t *testing.T, result *Result, id string) core.CompletedProcess {
	t.Helper()
	for _, p := range result.Processes {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("process %s missing from result", id)
	return core.CompletedProcess{}
}

func processIDs(result *Result) []string {
	ids := make([]string, len(result.Processes))
	for i, p := range result.Processes {
		ids[i] = p.ID
	}
	return ids
}
