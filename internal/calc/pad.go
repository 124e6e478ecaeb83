package calc

import (
	"math/rand"

	"github.com/gonum/matrix/mat64"
	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// DefaultPadNoise is the peak-to-peak amplitude of padding noise
const DefaultPadNoise = 20

// NumPadded is the number of padded variants Pad produces per sequence
const NumPadded = 2

// Pad fits seq into two seqLength by 3 windows.
//
// The first window ("before") keeps the last min(len(seq), seqLength) samples
// at its tail and fills the head with noise around seq[0]. The second window
// ("after") keeps the first min(len(seq), seqLength) samples at its head and
// fills the tail with noise around the last sample.
func Pad(seq gesture.Sequence, seqLength int, noiseLevel float64, rng *rand.Rand) ([]*mat64.Dense, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	if seqLength <= 0 {
		return nil, errors.Errorf("invalid sequence length %d", seqLength)
	}

	keep := len(seq)
	if keep > seqLength {
		keep = seqLength
	}

	padded := make([]*mat64.Dense, 0, NumPadded)

	{ // Before
		m := noiseAround(seq[0], seqLength, noiseLevel, rng)
		tail := seq[len(seq)-keep:]
		for i, sample := range tail {
			m.SetRow(seqLength-keep+i, sample[:])
		}
		padded = append(padded, m)
	}

	{ // After
		m := noiseAround(seq[len(seq)-1], seqLength, noiseLevel, rng)
		for i, sample := range seq[:keep] {
			m.SetRow(i, sample[:])
		}
		padded = append(padded, m)
	}

	return padded, nil
}

func noiseAround(center gesture.Sample, rows int, noiseLevel float64, rng *rand.Rand) *mat64.Dense {
	m := mat64.NewDense(rows, gesture.Dim, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < gesture.Dim; j++ {
			m.Set(i, j, (rng.Float64()-0.5)*noiseLevel+center[j])
		}
	}
	return m
}
