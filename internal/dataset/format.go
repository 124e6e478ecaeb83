package dataset

import (
	"math/rand"

	"github.com/gonum/matrix/mat64"
	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/calc"
	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// Formatted is a split ready for training: Features holds one flattened
// seqLength by 3 example per row, Labels the class id of each row.
type Formatted struct {
	Features *mat64.Dense
	Labels   []int32
	Len      int
}

// Formatter removes gravity from records and pads them to a fixed length.
type Formatter struct {
	SeqLength int
	PadNoise  float64
	Labels    LabelTable
	Rand      *rand.Rand
}

// Format produces calc.NumPadded rows per record: row NumPadded*i+k is the
// k-th padded variant of records[i].
func (f *Formatter) Format(records []gesture.Record) (*Formatted, error) {
	length := len(records) * calc.NumPadded
	if length == 0 {
		return &Formatted{}, nil
	}

	cols := f.SeqLength * gesture.Dim
	features := mat64.NewDense(length, cols, nil)
	labels := make([]int32, length)

	for idx, rec := range records {
		id, err := f.Labels.ID(rec.Label())
		if err != nil {
			return nil, errors.Wrapf(err, "record %d (%s)", idx, rec.SourceID)
		}

		normalized, err := calc.RemoveGravity(rec.Accel)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d (%s)", idx, rec.SourceID)
		}

		padded, err := calc.Pad(normalized, f.SeqLength, f.PadNoise, f.Rand)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d (%s)", idx, rec.SourceID)
		}

		for num, m := range padded {
			row := calc.NumPadded*idx + num
			features.SetRow(row, m.RawMatrix().Data)
			labels[row] = id
		}
	}

	return &Formatted{Features: features, Labels: labels, Len: length}, nil
}

// Example returns row i of the features as a sequence
func (f *Formatted) Example(i int) gesture.Sequence {
	row := f.Features.RawRowView(i)
	return calc.FromDense(mat64.NewDense(len(row)/gesture.Dim, gesture.Dim, row))
}
