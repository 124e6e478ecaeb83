package calc

import (
	"math/rand"

	"github.com/gonum/floats"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

func apply(seq gesture.Sequence, fn func(row []float64)) gesture.Sequence {
	out := seq.Clone()
	for i := range out {
		fn(out[i][:])
	}
	return out
}

// Scale multiplies every value by r
func Scale(seq gesture.Sequence, r Ratio) gesture.Sequence {
	factor := r.Factor()
	return apply(seq, func(row []float64) {
		floats.Scale(factor, row)
	})
}

// Shift adds offset to every value
func Shift(seq gesture.Sequence, offset float64) gesture.Sequence {
	return apply(seq, func(row []float64) {
		floats.AddConst(offset, row)
	})
}

// AddNoise adds independent uniform noise in [0, level) to every value
func AddNoise(seq gesture.Sequence, level float64, rng *rand.Rand) gesture.Sequence {
	return apply(seq, func(row []float64) {
		for j := range row {
			row[j] += level * rng.Float64()
		}
	})
}
