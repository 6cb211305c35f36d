package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes in arrival order. Equal arrivals keep
// their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) (*Result, error) {
	jobs := core.NewWorkingSet(processes)

	// sort jobs by arrival time
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	cpu := core.NewCpu(len(jobs))
	proccessDetails := make([]core.CompletedProcess, 0, len(jobs))

	currentTime := 0
	for i := range jobs {
		job := &jobs[i]
		// cpu idles until the job arrives
		currentTime = max(currentTime, job.ArrivalTime)
		job.Dispatch(currentTime)
		cpu.Execute(job.ID, currentTime, job.BurstTime)
		currentTime += job.BurstTime
		job.RemainingTime = 0

		slog.Debug("process completed", "algorithm", "fcfs", "pid", job.ID, "start", job.StartTime, "end", currentTime)
		proccessDetails = append(proccessDetails, DeriveCompletedProcess(job.Process, currentTime, job.StartTime))
	}

	return generateResponse(core.FCFS, cpu, proccessDetails), nil
}
