package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestFirstComeFirstServe(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe([]core.Process{
		job("P1", 0, 5), job("P2", 1, 3), job("P3", 2, 8),
	})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 0, 5), seg("P2", 5, 8), seg("P3", 8, 16)}, result)
	assert.Equal(t, 0, completed(t, result, "P1").WaitingTime)
	assert.Equal(t, 7, completed(t, result, "P2").TurnaroundTime)
	assert.Equal(t, 4, completed(t, result, "P2").WaitingTime)
	assert.Equal(t, 6, completed(t, result, "P3").WaitingTime)

	assert.Equal(t, core.FCFS, result.Algorithm)
	assert.InDelta(t, 26.0/3, result.Metrics.AvgTurnaroundTime, 1e-9)
	assert.InDelta(t, 10.0/3, result.Metrics.AvgWaitingTime, 1e-9)
	assert.InDelta(t, 100.0, result.Metrics.CpuUtilization, 1e-9)
	assert.InDelta(t, 3.0/16, result.Metrics.Throughput, 1e-9)
	assert.Equal(t, 2, result.Metrics.ContextSwitches)
	assert.Equal(t, 16, result.Metrics.TotalTime)
	assert.Zero(t, result.Metrics.IdleTime)
}

func TestFirstComeFirstServeIdleGap(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe([]core.Process{job("P1", 0, 2), job("P2", 4, 2)})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 0, 2), seg("P2", 4, 6)}, result)
	assert.Equal(t, 2, result.Metrics.IdleTime)
	assert.InDelta(t, 4.0/6*100, result.Metrics.CpuUtilization, 1e-9)
	assert.Equal(t, 0, completed(t, result, "P2").WaitingTime)
}

func TestFirstComeFirstServeKeepsInputOrderOnTies(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe([]core.Process{
		job("P9", 0, 1), job("P1", 0, 1), job("P5", 0, 1),
	})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P9", 0, 1), seg("P1", 1, 2), seg("P5", 2, 3)}, result)
}

func TestFirstComeFirstServeSortsByArrival(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe([]core.Process{job("late", 3, 1), job("early", 0, 2)})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("early", 0, 2), seg("late", 3, 4)}, result)
	assert.Equal(t, []string{"early", "late"}, processIDs(result))
}
