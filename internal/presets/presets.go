package presets

import (
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

type Preset struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Processes   []core.Process `json:"processes"`
}

type row struct {
	arrival, burst, priority int
}

func build(name, description string, rows ...row) Preset {
	processes := make([]core.Process, len(rows))
	for i, r := range rows {
		processes[i] = core.Process{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: r.arrival,
			BurstTime:   r.burst,
			Priority:    r.priority,
			Color:       requests.ProcessColor(i),
		}
	}
	return Preset{Name: name, Description: description, Processes: processes}
}

// All returns fresh copies of the built-in scenarios.
func All() []Preset {
	return []Preset{
		build("Simple Example", "3 processes arrival at 0, 1, 2",
			row{0, 5, 2}, row{1, 3, 1}, row{2, 8, 3}),
		build("Convoy Effect (FCFS Weakness)", "Long process first delays others",
			row{0, 15, 2}, row{1, 2, 1}, row{2, 2, 3}),
		build("SJF/SRTF Demo", "Processes with varied burst times",
			row{0, 8, 1}, row{1, 4, 1}, row{2, 9, 1}, row{3, 5, 1}),
		build("Priority Scheduling", "Processes with different priorities",
			row{0, 10, 3}, row{1, 1, 1}, row{2, 2, 4}, row{3, 1, 5}, row{4, 5, 2}),
	}
}

// Find looks a preset up by name, ignoring case.
func Find(name string) (Preset, bool) {
	for _, p := range All() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
