package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// DeriveCompletedProcess computes the per-process metrics of a finished run.
// The caller guarantees completionTime >= firstStartTime >= process.ArrivalTime.
func DeriveCompletedProcess(process core.Process, completionTime, firstStartTime int) core.CompletedProcess {
	turnAroundTime := completionTime - process.ArrivalTime
	return core.CompletedProcess{
		Process:        process,
		CompletionTime: completionTime,
		TurnaroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - process.BurstTime,
		ResponseTime:   firstStartTime - process.ArrivalTime,
	}
}

// DeriveSystemMetrics aggregates completed processes over totalElapsedTime.
// It returns zero metrics when there is nothing to aggregate.
func DeriveSystemMetrics(proccessDetails []core.CompletedProcess, totalElapsedTime int) core.SystemMetrics {
	if len(proccessDetails) == 0 || totalElapsedTime <= 0 {
		return core.SystemMetrics{}
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	var totalBurstTime int
	for _, p := range proccessDetails {
		totalBurstTime += p.BurstTime
	}

	elapsed := float64(totalElapsedTime)
	return core.SystemMetrics{
		AvgTurnaroundTime: averageTurnAroundTime,
		AvgWaitingTime:    averageWaitingTime,
		AvgResponseTime:   averageResponseTime,
		CpuUtilization:    float64(totalBurstTime) / elapsed * 100,
		Throughput:        float64(len(proccessDetails)) / elapsed,
		TotalTime:         totalElapsedTime,
	}
}

// CountContextSwitches counts adjacent segments whose process differs.
func CountContextSwitches(timeline []core.Segment) int {
	switches := 0
	for i := 1; i < len(timeline); i++ {
		if timeline[i].ProcessID != timeline[i-1].ProcessID {
			switches++
		}
	}
	return switches
}

func generateResponse(algorithm core.Algorithm, cpu *core.Cpu, proccessDetails []core.CompletedProcess) *Result {
	timeline := cpu.Timeline()
	cpuMetric := cpu.Metric()

	metrics := DeriveSystemMetrics(proccessDetails, cpuMetric.TotalTime)
	if metrics.TotalTime > 0 {
		metrics.IdleTime = cpuMetric.IdleTime
		metrics.ContextSwitches = CountContextSwitches(timeline)
	}

	slog.Debug("simulation finished",
		"algorithm", algorithm.String(),
		"processes", len(proccessDetails),
		"segments", len(timeline),
		"total_time", metrics.TotalTime,
		"context_switches", metrics.ContextSwitches)

	return &Result{
		Algorithm: algorithm,
		Timeline:  timeline,
		Processes: proccessDetails,
		Metrics:   metrics,
	}
}
