package prepare

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// Sentinel marks a segment boundary in the third column of a raw recording
const Sentinel = "-"

// NegativeLabel is the label of non-gesture motion
const NegativeLabel = "negative"

func parseRow(row []string) (gesture.Sample, error) {
	var s gesture.Sample
	for i := 0; i < gesture.Dim; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return s, errors.Wrapf(err, "bad value %q", row[i])
		}
		s[i] = v
	}
	return s, nil
}

// SplitCSVRecording cuts one continuous recording into gesture instances at
// every sentinel row. Rows without exactly 3 fields are ignored.
func SplitCSVRecording(rows [][]string, label string, name string) ([]gesture.Record, error) {
	var records []gesture.Record
	current := gesture.Record{Gesture: label, Name: name}

	for i, row := range rows {
		if len(row) != gesture.Dim {
			continue
		}
		if strings.TrimSpace(row[2]) == Sentinel {
			if len(current.Accel) > 0 {
				records = append(records, current)
				current = gesture.Record{Gesture: label, Name: name}
			}
			continue
		}

		sample, err := parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		current.Accel = append(current.Accel, sample)
	}

	if len(current.Accel) > 0 {
		records = append(records, current)
	}
	return records, nil
}

// ChunkCSVRecording cuts a negative recording into records of chunk samples.
// The row that arrives at a full chunk closes it and is dropped.
func ChunkCSVRecording(rows [][]string, name string, chunk int) ([]gesture.Record, error) {
	if chunk <= 0 {
		return nil, errors.Errorf("invalid chunk size %d", chunk)
	}

	var records []gesture.Record
	current := gesture.Record{Gesture: NegativeLabel, Name: name}

	for i, row := range rows {
		if len(row) != gesture.Dim || strings.TrimSpace(row[2]) == Sentinel {
			continue
		}
		if len(current.Accel) == chunk {
			records = append(records, current)
			current = gesture.Record{Gesture: NegativeLabel, Name: name}
			continue
		}

		sample, err := parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		current.Accel = append(current.Accel, sample)
	}

	if len(current.Accel) > 0 {
		records = append(records, current)
	}
	return records, nil
}
