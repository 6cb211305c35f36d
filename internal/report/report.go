package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

const idleLabel = "idle"

// errWriter remembers the first write error and fails every write after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteTable prints a title banner, a gantt chart and the per-process schedule table.
func WriteTable(w io.Writer, title string, result *schedulers.Result) error {
	ew := &errWriter{w: w}
	outputTitle(ew, title)
	if result == nil {
		_, _ = fmt.Fprintln(ew, "no processes")
		_, _ = fmt.Fprintln(ew)
		return ew.err
	}
	outputGantt(ew, result.Timeline)
	outputSchedule(ew, result.Processes, result.Metrics)
	return ew.err
}

// WriteComparison prints one row of system metrics per algorithm, then one error row
// per name in skipped.
func WriteComparison(w io.Writer, outcomes map[core.Algorithm]schedulers.Outcome, skipped map[string]error) error {
	ew := &errWriter{w: w}
	outputTitle(ew, "Algorithm comparison")
	table := tablewriter.NewWriter(ew)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "CPU %", "Throughput", "Switches"})
	for _, algorithm := range core.Algorithms() {
		outcome, ok := outcomes[algorithm]
		if !ok {
			continue
		}
		if outcome.Err != nil {
			table.Append([]string{algorithm.Title(), "error", outcome.Err.Error(), "", "", "", ""})
			continue
		}
		if outcome.Result == nil {
			table.Append([]string{algorithm.Title(), "-", "-", "-", "-", "-", "-"})
			continue
		}
		m := outcome.Result.Metrics
		table.Append([]string{
			algorithm.Title(),
			fmt.Sprintf("%.2f", m.AvgWaitingTime),
			fmt.Sprintf("%.2f", m.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", m.AvgResponseTime),
			fmt.Sprintf("%.2f", m.CpuUtilization),
			fmt.Sprintf("%.2f/t", m.Throughput),
			fmt.Sprint(m.ContextSwitches),
		})
	}

	names := make([]string, 0, len(skipped))
	for name := range skipped {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		table.Append([]string{name, "error", skipped[name].Error(), "", "", "", ""})
	}
	table.Render()
	return ew.err
}

// WriteCSV writes one row per completed process after a header row.
func WriteCSV(w io.Writer, result *schedulers.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "arrival", "burst", "priority", "completion", "turnaround", "waiting", "response"}); err != nil {
		return err
	}
	if result != nil {
		for _, p := range result.Processes {
			record := []string{
				p.ID,
				strconv.Itoa(p.ArrivalTime),
				strconv.Itoa(p.BurstTime),
				strconv.Itoa(p.Priority),
				strconv.Itoa(p.CompletionTime),
				strconv.Itoa(p.TurnaroundTime),
				strconv.Itoa(p.WaitingTime),
				strconv.Itoa(p.ResponseTime),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// withIdle fills the gaps of a timeline with idle slices.
func withIdle(timeline []core.Segment) []core.Segment {
	gantt := make([]core.Segment, 0, len(timeline))
	clock := 0
	for _, s := range timeline {
		if s.Start > clock {
			gantt = append(gantt, core.Segment{ProcessID: idleLabel, Start: clock, End: s.Start})
		}
		gantt = append(gantt, s)
		clock = s.End
	}
	return gantt
}

func outputGantt(w io.Writer, timeline []core.Segment) {
	gantt := withIdle(timeline)
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := gantt[i].ProcessID
		padding := strings.Repeat(" ", max(8-len(pid), 0)/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, processes []core.CompletedProcess, metrics core.SystemMetrics) {
	rows := make([][]string, len(processes))
	for i, p := range processes {
		rows[i] = []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.CompletionTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", metrics.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", metrics.AvgTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", metrics.AvgResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", metrics.Throughput)})
	table.Render()
}
