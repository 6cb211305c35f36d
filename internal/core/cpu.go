package core

// Segment is one contiguous cpu allocation over [Start, End).
type Segment struct {
	ProcessID string `json:"processId"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated processor. It records every allocation on its timeline.
type Cpu struct {
	timeline []Segment
	metric   CpuMetric
}

func NewCpu(capacity int) *Cpu {
	return &Cpu{timeline: make([]Segment, 0, capacity)}
}

// Execute runs pid over [start, start+duration). An allocation that continues the
// previous segment of the same process is merged into it. start must not be before
// the end of the last allocation.
func (c *Cpu) Execute(pid string, start, duration int) {
	if duration <= 0 {
		return
	}
	if start > c.metric.TotalTime {
		c.metric.IdleTime += start - c.metric.TotalTime
	}
	c.metric.UtilizationTime += duration
	c.metric.TotalTime = start + duration

	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if last.ProcessID == pid && last.End == start {
			last.End += duration
			return
		}
	}
	c.timeline = append(c.timeline, Segment{ProcessID: pid, Start: start, End: start + duration})
}

// Timeline returns a copy of the recorded allocations.
func (c *Cpu) Timeline() []Segment {
	timeline := make([]Segment, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}

func (c *Cpu) Metric() CpuMetric {
	return c.metric
}
