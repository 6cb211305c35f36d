package core

import (
	"fmt"
	"strings"
)

type Algorithm int

const (
	FCFS Algorithm = iota
	SJF
	SRTF
	RoundRobin
	PriorityNP
	PriorityP
)

var algorithmIds = [...]string{
	FCFS:       "fcfs",
	SJF:        "sjf",
	SRTF:       "srtf",
	RoundRobin: "roundRobin",
	PriorityNP: "priority",
	PriorityP:  "priorityPreemptive",
}

var algorithmTitles = [...]string{
	FCFS:       "First-come, first-serve",
	SJF:        "Shortest-job-first",
	SRTF:       "Shortest-remaining-time-first",
	RoundRobin: "Round-robin",
	PriorityNP: "Priority (non-preemptive)",
	PriorityP:  "Priority (preemptive)",
}

// aliases accepted by ParseAlgorithm, keyed by lower-cased name
var algorithmAliases = map[string]Algorithm{
	"fcfs":                FCFS,
	"fifo":                FCFS,
	"sjf":                 SJF,
	"srtf":                SRTF,
	"srt":                 SRTF,
	"roundrobin":          RoundRobin,
	"round-robin":         RoundRobin,
	"round_robin":         RoundRobin,
	"rr":                  RoundRobin,
	"priority":            PriorityNP,
	"priority-np":         PriorityNP,
	"prioritynp":          PriorityNP,
	"prioritypreemptive":  PriorityP,
	"priority-preemptive": PriorityP,
	"priority_preemptive": PriorityP,
	"priority-p":          PriorityP,
	"priorityp":           PriorityP,
}

// Algorithms returns every supported policy in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, SRTF, RoundRobin, PriorityNP, PriorityP}
}

func (a Algorithm) Valid() bool {
	return a >= FCFS && a <= PriorityP
}

// String returns the external id, e.g. "roundRobin".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmIds[a]
}

func (a Algorithm) Title() string {
	if !a.Valid() {
		return a.String()
	}
	return algorithmTitles[a]
}

func (a Algorithm) Preemptive() bool {
	return a == SRTF || a == RoundRobin || a == PriorityP
}

func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return FCFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
