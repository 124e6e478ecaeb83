package vec

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// ErrEmptySequence is returned when a statistic is requested over zero samples
var ErrEmptySequence = errors.New("empty sequence")

// ErrZeroVector is returned when normalizing a vector of magnitude 0
var ErrZeroVector = errors.New("zero magnitude vector")

// Magnitude returns the euclidean length of s
func Magnitude(s gesture.Sample) float64 {
	return math.Sqrt(Dot(s, s))
}

// Normalize returns s scaled to unit length
func Normalize(s gesture.Sample) (gesture.Sample, error) {
	magnitude := Magnitude(s)
	if magnitude == 0 {
		return gesture.Sample{}, ErrZeroVector
	}

	var out gesture.Sample
	for i := range s {
		out[i] = s[i] / magnitude
	}
	return out, nil
}

// Dot returns the dot product of a and b
func Dot(a, b gesture.Sample) float64 {
	return floats.Dot(a[:], b[:])
}

// ToDense lays seq out as an n by 3 matrix
func ToDense(seq gesture.Sequence) (*mat64.Dense, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	return mat64.NewDense(len(seq), gesture.Dim, seq.Flatten()), nil
}

// EstimateGravity returns the per-axis mean of seq
func EstimateGravity(seq gesture.Sequence) (gesture.Sample, error) {
	m, err := ToDense(seq)
	if err != nil {
		return gesture.Sample{}, err
	}

	rows, _ := m.Dims()
	col := make([]float64, rows)

	var gravity gesture.Sample
	for axis := 0; axis < gesture.Dim; axis++ {
		mat64.Col(col, axis, m)
		gravity[axis] = floats.Sum(col) / float64(rows)
	}

	return gravity, nil
}
