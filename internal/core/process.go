package core

// Process is one job supplied by the caller. It is never modified by the engines.
type Process struct {
	ID          string `json:"id"`
	ArrivalTime int    `json:"arrivalTime"`
	BurstTime   int    `json:"burstTime"`
	Priority    int    `json:"priority"` // lower number = higher priority
	Color       string `json:"color,omitempty"`
}

// CompletedProcess is a process together with the metrics of its finished run.
type CompletedProcess struct {
	Process
	CompletionTime int `json:"completionTime"`
	TurnaroundTime int `json:"turnaroundTime"`
	WaitingTime    int `json:"waitingTime"`
	ResponseTime   int `json:"responseTime"`
}

type SystemMetrics struct {
	AvgTurnaroundTime float64 `json:"avgTurnaroundTime"`
	AvgWaitingTime    float64 `json:"avgWaitingTime"`
	AvgResponseTime   float64 `json:"avgResponseTime"`
	CpuUtilization    float64 `json:"cpuUtilization"`
	Throughput        float64 `json:"throughput"`
	ContextSwitches   int     `json:"contextSwitches"`
	TotalTime         int     `json:"totalTime"`
	IdleTime          int     `json:"idleTime"`
}

// NotStarted marks a WorkingProcess that has never been dispatched.
const NotStarted = -1

// WorkingProcess is the per-run copy of a Process that an engine mutates.
type WorkingProcess struct {
	Process
	Index         int // position in the caller's slice
	RemainingTime int
	StartTime     int
}

// NewWorkingSet copies processes into a fresh arena. The caller's slice is not aliased.
func NewWorkingSet(processes []Process) []WorkingProcess {
	set := make([]WorkingProcess, len(processes))
	for i, p := range processes {
		set[i] = WorkingProcess{
			Process:       p,
			Index:         i,
			RemainingTime: p.BurstTime,
			StartTime:     NotStarted,
		}
	}
	return set
}

// Dispatch records the first time the process gets the cpu.
func (w *WorkingProcess) Dispatch(now int) {
	if w.StartTime == NotStarted {
		w.StartTime = now
	}
}

func (w *WorkingProcess) Done() bool {
	return w.RemainingTime <= 0
}
