package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestPriorityPreemptive(t *testing.T) {
	result, err := SchedulePriorityPreemptive([]core.Process{
		prioritized("P1", 0, 4, 2), prioritized("P2", 1, 3, 1),
	})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 0, 1), seg("P2", 1, 4), seg("P1", 4, 7)}, result)
	assert.Equal(t, 2, result.Metrics.ContextSwitches)
	assert.Equal(t, 3, completed(t, result, "P1").WaitingTime)
	assert.Equal(t, 0, completed(t, result, "P1").ResponseTime)
	assert.Equal(t, 0, completed(t, result, "P2").WaitingTime)
}

func TestPriorityPreemptiveEqualPriorityDoesNotPreempt(t *testing.T) {
	result, err := SchedulePriorityPreemptive([]core.Process{
		prioritized("P1", 0, 4, 1), prioritized("P2", 1, 2, 1), prioritized("P3", 2, 1, 3),
	})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 0, 4), seg("P2", 4, 6), seg("P3", 6, 7)}, result)
}

func TestPriorityPreemptiveChain(t *testing.T) {
	result, err := SchedulePriorityPreemptive([]core.Process{
		prioritized("P1", 0, 5, 3), prioritized("P2", 1, 2, 2), prioritized("P3", 2, 1, 1),
	})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{
		seg("P1", 0, 1), seg("P2", 1, 2), seg("P3", 2, 3), seg("P2", 3, 4), seg("P1", 4, 8),
	}, result)
	assert.Equal(t, []string{"P1", "P2", "P3"}, processIDs(result))
	assert.Equal(t, 4, result.Metrics.ContextSwitches)
	assert.Equal(t, 8, completed(t, result, "P1").CompletionTime)
}

func TestPriorityPreemptiveIdleBeforeFirstArrival(t *testing.T) {
	result, err := SchedulePriorityPreemptive([]core.Process{prioritized("P1", 2, 2, 1)})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 2, 4)}, result)
	assert.Equal(t, 2, result.Metrics.IdleTime)
	assert.InDelta(t, 50.0, result.Metrics.CpuUtilization, 1e-9)
}
