package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriorityPreemptive runs the highest priority ready process. Only an arrival
// with a strictly lower priority number preempts; equal priorities wait for the next
// natural decision point.
func SchedulePriorityPreemptive(processes []core.Process) (*Result, error) {
	return scheduleEventDriven(core.PriorityP, processes, sortPriorityPreemptive, nextHigherPriorityArrival)
}

func sortPriorityPreemptive(a, b *core.WorkingProcess) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}

func nextHigherPriorityArrival(running *core.WorkingProcess, incoming *arrivals) (int, bool) {
	for _, p := range incoming.pending[incoming.next:] {
		if p.Priority < running.Priority {
			return p.ArrivalTime, true
		}
	}
	return 0, false
}
