package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestPriorityNonPreemptive(t *testing.T) {
	result, err := SchedulePriority([]core.Process{
		prioritized("P1", 0, 4, 2), prioritized("P2", 1, 3, 1), prioritized("P3", 2, 1, 3),
	})
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{seg("P1", 0, 4), seg("P2", 4, 7), seg("P3", 7, 8)}, result)
	assert.Equal(t, 3, completed(t, result, "P2").WaitingTime)
	assert.Equal(t, 5, completed(t, result, "P3").WaitingTime)
	assert.Equal(t, core.PriorityNP, result.Algorithm)
}

func TestPriorityNonPreemptiveTieBreaks(t *testing.T) {
	result, err := SchedulePriority([]core.Process{
		prioritized("P1", 0, 3, 1),
		prioritized("P3", 1, 2, 2),
		prioritized("P2", 1, 2, 2),
		prioritized("P4", 0, 2, 2),
	})
	require.NoError(t, err)

	// P4 arrived earlier than P2 and P3 at the same priority; P2 beats P3 by id
	assertTimeline(t, []core.Segment{
		seg("P1", 0, 3), seg("P4", 3, 5), seg("P2", 5, 7), seg("P3", 7, 9),
	}, result)
}
