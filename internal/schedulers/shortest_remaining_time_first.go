package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTimeFirst is preemptive SJF. The choice is re-evaluated at
// every arrival; ties go to the earlier arrival, then input order.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (*Result, error) {
	return scheduleEventDriven(core.SRTF, processes, sortShortestRemaining, nextArrival)
}

func sortShortestRemaining(a, b *core.WorkingProcess) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}

// nextArrival lets the running process continue until anything else arrives.
func nextArrival(_ *core.WorkingProcess, incoming *arrivals) (int, bool) {
	if !incoming.remaining() {
		return 0, false
	}
	return incoming.peek().ArrivalTime, true
}

// preemptionPoint reports the next instant at which running may lose the cpu.
type preemptionPoint func(running *core.WorkingProcess, incoming *arrivals) (int, bool)

// scheduleEventDriven jumps between decision points instead of stepping unit by unit.
// At each point the minimum ready process by less runs until it finishes or the
// next preemption point, whichever comes first.
func scheduleEventDriven(algorithm core.Algorithm, processes []core.Process, less func(a, b *core.WorkingProcess) bool, preemptAt preemptionPoint) (*Result, error) {
	jobs := core.NewWorkingSet(processes)
	bound := timeBound(jobs)
	incoming := newArrivals(jobs, byIndex)
	readyQueue := newReadyQueue(len(jobs), less)
	cpu := core.NewCpu(len(jobs))
	proccessDetails := make([]core.CompletedProcess, 0, len(jobs))

	currentTime := 0
	for len(proccessDetails) < len(jobs) {
		if currentTime > bound {
			return nil, divergence(algorithm, currentTime, bound)
		}
		incoming.admit(currentTime, readyQueue.push)

		if readyQueue.Len() == 0 {
			if !incoming.remaining() {
				return nil, divergence(algorithm, currentTime, bound)
			}
			currentTime = incoming.peek().ArrivalTime
			continue
		}

		job := readyQueue.pop()
		duration := job.RemainingTime
		if at, ok := preemptAt(job, incoming); ok && at-currentTime < duration {
			duration = at - currentTime
		}
		if duration < 1 {
			return nil, divergence(algorithm, currentTime, bound)
		}

		job.Dispatch(currentTime)
		cpu.Execute(job.ID, currentTime, duration)
		job.RemainingTime -= duration
		currentTime += duration

		if job.Done() {
			slog.Debug("process completed", "algorithm", algorithm.String(), "pid", job.ID, "end", currentTime)
			proccessDetails = append(proccessDetails, DeriveCompletedProcess(job.Process, currentTime, job.StartTime))
			continue
		}
		slog.Debug("process preempted", "algorithm", algorithm.String(), "pid", job.ID, "at", currentTime, "remaining", job.RemainingTime)
		readyQueue.push(job)
	}

	sortByID(proccessDetails)
	return generateResponse(algorithm, cpu, proccessDetails), nil
}

func sortByID(details []core.CompletedProcess) {
	sort.SliceStable(details, func(i, j int) bool {
		return lessID(details[i].ID, details[j].ID)
	})
}
