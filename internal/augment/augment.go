package augment

import (
	"math/rand"

	"github.com/petewarden/magic-wand-capture/internal/calc"
	"github.com/petewarden/magic-wand-capture/internal/config"
	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// Augmenter grows a training set with shifted, noisy, time warped and
// amplitude scaled copies of every record.
type Augmenter struct {
	cfg config.Augment
	rng *rand.Rand
}

// New returns an Augmenter drawing all randomness from rng
func New(cfg config.Augment, rng *rand.Rand) *Augmenter {
	return &Augmenter{cfg: cfg, rng: rng}
}

// CountLabels returns how often each label occurs in records
func CountLabels(records []gesture.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Label()]++
	}
	return counts
}

// RetentionProbability is the chance a candidate of a label seen count times
// out of total records is kept. Values of 1 or more always keep.
func RetentionProbability(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// Candidates returns every variant derived from rec, the original first.
// Variants that time warping shrinks to nothing are left out.
func (a *Augmenter) Candidates(rec gesture.Record) []gesture.Record {
	seq := rec.Accel
	out := []gesture.Record{rec}

	for i := 0; i < a.cfg.Shifts; i++ {
		offset := (a.rng.Float64() - 0.5) * a.cfg.ShiftRange
		out = append(out, rec.WithAccel(calc.Shift(seq, offset)))
	}

	for i := 0; i < a.cfg.Noises; i++ {
		out = append(out, rec.WithAccel(calc.AddNoise(seq, a.cfg.NoiseLevel, a.rng)))
	}

	for _, r := range a.cfg.Ratios {
		warped, err := calc.TimeWarp(seq, r)
		if err != nil || len(warped) == 0 {
			continue
		}
		out = append(out, rec.WithAccel(warped))
	}

	for _, r := range a.cfg.Ratios {
		out = append(out, rec.WithAccel(calc.Scale(seq, r)))
	}

	return out
}

// Augment returns the accepted candidates of every record.
// Each candidate is kept with the retention probability of its label.
func (a *Augmenter) Augment(records []gesture.Record) []gesture.Record {
	counts := CountLabels(records)
	total := len(records)

	var out []gesture.Record
	for _, rec := range records {
		p := RetentionProbability(total, counts[rec.Label()])
		for _, candidate := range a.Candidates(rec) {
			if a.rng.Float64() < p {
				out = append(out, candidate)
			}
		}
	}

	return out
}
