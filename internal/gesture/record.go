package gesture

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// JSON field names used by the JSON-lines files
const (
	LabelName     = "gesture"
	HandLabelName = "hand_label"
	DataName      = "accel_ms2_xyz"
)

// Dim is the number of axes in a sample
const Dim = 3

// Sample is a single (x, y, z) accelerometer reading
type Sample [Dim]float64

// Sequence is one gesture recording
type Sequence []Sample

// Clone returns a deep copy of the sequence
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Flatten returns the sequence as a row-major []float64 of len(s)*Dim values
func (s Sequence) Flatten() []float64 {
	flat := make([]float64, 0, len(s)*Dim)
	for _, sample := range s {
		flat = append(flat, sample[:]...)
	}
	return flat
}

// Record is one labeled recording as stored in a JSON-lines file.
type Record struct {
	Gesture   string   `json:"gesture,omitempty"`
	HandLabel string   `json:"hand_label,omitempty"`
	SourceID  string   `json:"source_id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Accel     Sequence `json:"accel_ms2_xyz"`
}

// Label returns the hand corrected label if there is one, the recorded gesture otherwise.
func (r Record) Label() string {
	if r.HandLabel != "" {
		return r.HandLabel
	}
	return r.Gesture
}

// WithAccel returns a copy of r carrying seq instead of its own samples
func (r Record) WithAccel(seq Sequence) Record {
	r.Accel = seq
	return r
}

type rawRecord struct {
	Gesture   string      `json:"gesture"`
	HandLabel string      `json:"hand_label"`
	SourceID  string      `json:"source_id"`
	Name      string      `json:"name"`
	Accel     [][]float64 `json:"accel_ms2_xyz"`
}

// ParseRecord decodes and validates one JSON line.
func ParseRecord(line []byte) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return Record{}, errors.Wrap(err, "invalid json")
	}
	if strings.TrimSpace(raw.Gesture) == "" && strings.TrimSpace(raw.HandLabel) == "" {
		return Record{}, errors.Errorf("record %q has neither %s nor %s", raw.SourceID, LabelName, HandLabelName)
	}

	seq := make(Sequence, len(raw.Accel))
	for i, values := range raw.Accel {
		if len(values) != Dim {
			return Record{}, errors.Errorf("%s[%d] has %d values, expected %d", DataName, i, len(values), Dim)
		}
		copy(seq[i][:], values)
	}

	return Record{
		Gesture:   raw.Gesture,
		HandLabel: raw.HandLabel,
		SourceID:  raw.SourceID,
		Name:      raw.Name,
		Accel:     seq,
	}, nil
}

// Split names one of the three disjoint dataset partitions
type Split string

// Dataset splits
const (
	Train Split = "train"
	Valid Split = "valid"
	Test  Split = "test"
)
