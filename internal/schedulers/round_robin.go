package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin gives each ready process up to timeQuantum units in FIFO order.
// Processes that arrive during a slice are queued ahead of the process that just
// used it. A quantum below 1 is clamped to 1.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (*Result, error) {
	if timeQuantum < 1 {
		slog.Warn("round robin time quantum clamped", "requested", timeQuantum, "quantum", 1)
		timeQuantum = 1
	}
	slog.Debug("running round robin", "time_quantum", timeQuantum)

	jobs := core.NewWorkingSet(processes)
	bound := timeBound(jobs)
	incoming := newArrivals(jobs, byID)
	roundRobinQueue := newRunQueue(len(jobs))
	cpu := core.NewCpu(len(jobs))
	proccessDetails := make([]core.CompletedProcess, 0, len(jobs))

	currentTime := 0
	incoming.admit(currentTime, roundRobinQueue.push)

	for len(proccessDetails) < len(jobs) {
		if roundRobinQueue.Len() == 0 {
			if !incoming.remaining() {
				return nil, divergence(core.RoundRobin, currentTime, bound)
			}
			currentTime = incoming.peek().ArrivalTime
			incoming.admit(currentTime, roundRobinQueue.push)
		}

		job := roundRobinQueue.pop()
		job.Dispatch(currentTime)

		slice := min(timeQuantum, job.RemainingTime)
		if currentTime+slice > bound {
			return nil, divergence(core.RoundRobin, currentTime+slice, bound)
		}
		cpu.Execute(job.ID, currentTime, slice)
		job.RemainingTime -= slice
		currentTime += slice

		// arrivals during the slice queue ahead of the job that used it
		incoming.admit(currentTime, roundRobinQueue.push)

		if !job.Done() {
			slog.Debug("context switch", "pid", job.ID, "at", currentTime, "remaining", job.RemainingTime)
			roundRobinQueue.push(job)
			continue
		}
		slog.Debug("process completed", "algorithm", "roundRobin", "pid", job.ID, "end", currentTime)
		proccessDetails = append(proccessDetails, DeriveCompletedProcess(job.Process, currentTime, job.StartTime))
	}

	sortByID(proccessDetails)
	return generateResponse(core.RoundRobin, cpu, proccessDetails), nil
}
