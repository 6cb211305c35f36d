package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriority is non-preemptive priority scheduling. Lower numbers run first;
// ties go to the earlier arrival, then the smaller id.
func SchedulePriority(processes []core.Process) (*Result, error) {
	return scheduleNonPreemptive(core.PriorityNP, processes, sortPriority)
}

func sortPriority(a, b *core.WorkingProcess) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return lessID(a.ID, b.ID)
}
