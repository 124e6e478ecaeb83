package calc

import (
	"github.com/pkg/errors"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

// Ratio is a playback speed of Molecule input samples per Denominator output samples
type Ratio struct {
	Molecule    int `yaml:"molecule"`
	Denominator int `yaml:"denominator"`
}

// Validate checks both parts are positive
func (r Ratio) Validate() error {
	if r.Molecule <= 0 || r.Denominator <= 0 {
		return errors.Errorf("invalid ratio %d/%d", r.Molecule, r.Denominator)
	}
	return nil
}

// Factor returns Molecule/Denominator
func (r Ratio) Factor() float64 {
	return float64(r.Molecule) / float64(r.Denominator)
}

// DefaultRatios are the speed ratios used for time warping and amplitude scaling
var DefaultRatios = []Ratio{
	{3, 2}, {5, 3}, {2, 3}, {3, 4}, {9, 5}, {6, 5}, {4, 5},
}

// warpGroups returns how many windows of r fit into n samples.
// Window i reads samples m*i through m*i+d, except that with d == 1 the
// neighbour sample always has weight 0 and is never read.
func warpGroups(n int, r Ratio) int {
	reach := r.Denominator
	if reach == 1 {
		reach = 0
	}
	last := n - 1 - reach
	if last < 0 {
		return 0
	}
	return last/r.Molecule + 1
}

// TimeWarp resamples seq to simulate the gesture performed at speed r.
// Every Molecule input samples become Denominator output samples, each the
// linear blend of two neighbouring inputs.
func TimeWarp(seq gesture.Sequence, r Ratio) (gesture.Sequence, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	m, d := r.Molecule, r.Denominator
	groups := warpGroups(len(seq), r)
	out := make(gesture.Sequence, groups*d)

	for i := 0; i < groups; i++ {
		for k := 0; k < d; k++ {
			cur := seq[m*i+k]
			var next gesture.Sample
			if k > 0 {
				next = seq[m*i+k+1]
			}
			for j := 0; j < gesture.Dim; j++ {
				out[d*i+k][j] = (cur[j]*float64(d-k) + next[j]*float64(k)) / float64(d)
			}
		}
	}

	return out, nil
}
