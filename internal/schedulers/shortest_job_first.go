package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst picks the ready process with the smallest burst and runs it
// to completion. Ties go to the earlier arrival, then the smaller id.
func ScheduleShortestJobFirst(processes []core.Process) (*Result, error) {
	return scheduleNonPreemptive(core.SJF, processes, sortShortestJob)
}

func sortShortestJob(a, b *core.WorkingProcess) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return lessID(a.ID, b.ID)
}

// scheduleNonPreemptive repeatedly admits arrived processes, selects the minimum by
// less and runs it uninterrupted.
func scheduleNonPreemptive(algorithm core.Algorithm, processes []core.Process, less func(a, b *core.WorkingProcess) bool) (*Result, error) {
	jobs := core.NewWorkingSet(processes)
	bound := timeBound(jobs)
	incoming := newArrivals(jobs, byID)
	readyQueue := newReadyQueue(len(jobs), less)
	cpu := core.NewCpu(len(jobs))
	proccessDetails := make([]core.CompletedProcess, 0, len(jobs))

	currentTime := 0
	for len(proccessDetails) < len(jobs) {
		incoming.admit(currentTime, readyQueue.push)

		if readyQueue.Len() == 0 {
			if !incoming.remaining() {
				return nil, divergence(algorithm, currentTime, bound)
			}
			// nothing ready, jump to next arrival
			currentTime = incoming.peek().ArrivalTime
			continue
		}

		job := readyQueue.pop()
		if currentTime+job.RemainingTime > bound {
			return nil, divergence(algorithm, currentTime+job.RemainingTime, bound)
		}
		job.Dispatch(currentTime)
		cpu.Execute(job.ID, currentTime, job.RemainingTime)
		currentTime += job.RemainingTime
		job.RemainingTime = 0

		slog.Debug("process completed", "algorithm", algorithm.String(), "pid", job.ID, "start", job.StartTime, "end", currentTime)
		proccessDetails = append(proccessDetails, DeriveCompletedProcess(job.Process, currentTime, job.StartTime))
	}

	return generateResponse(algorithm, cpu, proccessDetails), nil
}
