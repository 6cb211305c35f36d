package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrInvalidCSV = errors.New("invalid process csv")

// LoadProcessesCSV reads rows of id,arrival,burst[,priority]. A leading header row
// whose first column is "id" is skipped. Colours are assigned from the palette.
func LoadProcessesCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 3 or 4", ErrInvalidCSV, i+1, len(row))
		}
		p := core.Process{
			ID:    strings.TrimSpace(row[0]),
			Color: ProcessColor(i),
		}
		if p.ArrivalTime, err = parseField(row[1], "arrival", i); err != nil {
			return nil, err
		}
		if p.BurstTime, err = parseField(row[2], "burst", i); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if p.Priority, err = parseField(row[3], "priority", i); err != nil {
				return nil, err
			}
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func parseField(value, field string, row int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: row %d %s %q is not an integer", ErrInvalidCSV, row+1, field, value)
	}
	return n, nil
}
