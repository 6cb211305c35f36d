package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

func sample(t *testing.T) *schedulers.Result {
	t.Helper()
	result, err := schedulers.Run(core.FCFS, []core.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 2},
		{ID: "P2", ArrivalTime: 5, BurstTime: 3},
	}, schedulers.Options{})
	require.NoError(t, err)
	return result
}

func TestWithIdle(t *testing.T) {
	got := withIdle([]core.Segment{{ProcessID: "P1", Start: 1, End: 3}, {ProcessID: "P2", Start: 5, End: 6}})
	want := []core.Segment{
		{ProcessID: idleLabel, Start: 0, End: 1},
		{ProcessID: "P1", Start: 1, End: 3},
		{ProcessID: idleLabel, Start: 3, End: 5},
		{ProcessID: "P2", Start: 5, End: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("withIdle() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, "First-come, first-serve", sample(t)))

	out := buf.String()
	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, idleLabel)
	assert.Contains(t, out, "P2")
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, "Empty", nil))
	assert.Contains(t, buf.String(), "no processes")
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	err := WriteComparison(&buf, map[core.Algorithm]schedulers.Outcome{
		core.FCFS: {Result: sample(t)},
		core.SJF:  {Err: errors.New("boom")},
	}, map[string]error{"lottery": errors.New("no such algorithm")})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, core.FCFS.Title())
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "lottery")
	assert.Contains(t, out, "no such algorithm")
	assert.NotContains(t, out, core.RoundRobin.Title())
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("broken pipe")
}

func TestWritersReportWriteErrors(t *testing.T) {
	w := &failingWriter{}
	assert.EqualError(t, WriteTable(w, "First-come, first-serve", sample(t)), "broken pipe")
	assert.Equal(t, 1, w.writes)

	assert.EqualError(t, WriteTable(&failingWriter{}, "Empty", nil), "broken pipe")
	assert.EqualError(t, WriteComparison(&failingWriter{}, map[core.Algorithm]schedulers.Outcome{
		core.FCFS: {Result: sample(t)},
	}, nil), "broken pipe")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	want := [][]string{
		{"id", "arrival", "burst", "priority", "completion", "turnaround", "waiting", "response"},
		{"P1", "0", "2", "0", "2", "2", "0", "0"},
		{"P2", "5", "3", "0", "8", "3", "0", "0"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("WriteCSV() mismatch (-want +got):\n%s", diff)
	}
}
