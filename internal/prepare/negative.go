package prepare

import (
	"math/rand"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// negativeName spreads generated instances over the names negative6..negative8
func negativeName(i int) string {
	switch {
	case i > 80:
		return "negative8"
	case i > 60:
		return "negative7"
	default:
		return "negative6"
	}
}

func centered(rng *rand.Rand, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}

// GenerateNegatives fabricates three families of non-gesture motion, each
// with instances records of length samples:
// large movement along a straight line, pure noise, and holding still.
func GenerateNegatives(rng *rand.Rand, instances int, length int) []gesture.Record {
	records := make([]gesture.Record, 0, 3*instances)

	newRecord := func(i int) gesture.Record {
		return gesture.Record{
			Gesture: NegativeLabel,
			Name:    negativeName(i),
			Accel:   make(gesture.Sequence, length),
		}
	}

	// Straight line
	for i := 0; i < instances; i++ {
		rec := newRecord(i)
		var start, increase gesture.Sample
		for j := range start {
			start[j] = centered(rng, 2000)
		}
		for j := range increase {
			increase[j] = centered(rng, 10)
		}
		for t := 0; t < length; t++ {
			for j := range rec.Accel[t] {
				rec.Accel[t][j] = start[j] + float64(t)*increase[j] + centered(rng, 6)
			}
		}
		records = append(records, rec)
	}

	// Random
	for i := 0; i < instances; i++ {
		rec := newRecord(i)
		for t := 0; t < length; t++ {
			for j := range rec.Accel[t] {
				rec.Accel[t][j] = centered(rng, 1000)
			}
		}
		records = append(records, rec)
	}

	// Stay still
	for i := 0; i < instances; i++ {
		rec := newRecord(i)
		var start gesture.Sample
		for j := range start {
			start[j] = centered(rng, 2000)
		}
		for t := 0; t < length; t++ {
			for j := range rec.Accel[t] {
				rec.Accel[t][j] = start[j] + centered(rng, 40)
			}
		}
		records = append(records, rec)
	}

	return records
}
