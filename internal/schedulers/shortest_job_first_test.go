package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestShortestJobFirst(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.Process{
		job("P1", 0, 6), job("P2", 0, 8), job("P3", 0, 7), job("P4", 0, 3),
	})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{
		seg("P4", 0, 3), seg("P1", 3, 9), seg("P3", 9, 16), seg("P2", 16, 24),
	}, result)
	assert.Equal(t, []string{"P4", "P1", "P3", "P2"}, processIDs(result))
	assert.InDelta(t, 7.0, result.Metrics.AvgWaitingTime, 1e-9)
}

func TestShortestJobFirstIsNonPreemptive(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.Process{job("P1", 0, 8), job("P2", 1, 1)})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 0, 8), seg("P2", 8, 9)}, result)
}

func TestShortestJobFirstTieBreaks(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.Process{
		job("B", 0, 2), job("A", 0, 2), job("C", 1, 1), job("D", 2, 2),
	})
	require.NoError(t, err)

	// equal bursts and arrivals go by id; C is shorter once it arrives;
	// B and D tie on burst and B arrived first
	assertTimeline(t, []core.Segment{
		seg("A", 0, 2), seg("C", 2, 3), seg("B", 3, 5), seg("D", 5, 7),
	}, result)
}

func TestShortestJobFirstJumpsToNextArrival(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.Process{job("P1", 3, 2), job("P2", 10, 1)})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 3, 5), seg("P2", 10, 11)}, result)
	assert.Equal(t, 8, result.Metrics.IdleTime)
	assert.Equal(t, 0, completed(t, result, "P1").ResponseTime)
}
