package requests

import (
	"fmt"
	"math/rand"

	"cpu-scheduler/internal/core"
)

const (
	MaxProcesses   = 20
	MinBurstTime   = 1
	MaxBurstTime   = 20
	MaxArrivalTime = 10
	MaxPriority    = 5
)

var processColors = []string{
	"#4A90E2",
	"#E94B3C",
	"#50C878",
	"#F39C12",
	"#9B59B6",
	"#1ABC9C",
	"#E67E22",
	"#3498DB",
	"#16A085",
	"#C0392B",
}

// ProcessColor cycles through the display palette.
func ProcessColor(index int) string {
	return processColors[index%len(processColors)]
}

// RandomProcesses generates n processes named P1..Pn. n is clamped to [1, MaxProcesses].
func RandomProcesses(rng *rand.Rand, n int) []core.Process {
	n = max(1, min(n, MaxProcesses))
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: rng.Intn(MaxArrivalTime + 1),
			BurstTime:   MinBurstTime + rng.Intn(MaxBurstTime-MinBurstTime+1),
			Priority:    1 + rng.Intn(MaxPriority),
			Color:       ProcessColor(i),
		}
	}
	return processes
}
