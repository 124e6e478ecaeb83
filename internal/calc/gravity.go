package calc

import (
	"github.com/gonum/matrix/mat64"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
	"github.com/petewarden/magic-wand-capture/internal/vec"
)

// ErrEmptySequence is returned for operations that need at least one sample
var ErrEmptySequence = vec.ErrEmptySequence

// RemoveGravity subtracts the mean of each axis from every sample.
// The mean over the whole recording is taken as the gravity vector.
func RemoveGravity(seq gesture.Sequence) (gesture.Sequence, error) {
	gravity, err := vec.EstimateGravity(seq)
	if err != nil {
		return nil, err
	}

	m, err := vec.ToDense(seq)
	if err != nil {
		return nil, err
	}

	rows, _ := m.Dims()
	bias := mat64.NewDense(rows, gesture.Dim, nil)
	for i := 0; i < rows; i++ {
		bias.SetRow(i, gravity[:])
	}
	m.Sub(m, bias)

	return FromDense(m), nil
}

// FromDense converts an n by 3 matrix back to a sequence
func FromDense(m *mat64.Dense) gesture.Sequence {
	rows, _ := m.Dims()
	seq := make(gesture.Sequence, rows)
	for i := 0; i < rows; i++ {
		copy(seq[i][:], m.RawRowView(i))
	}
	return seq
}
