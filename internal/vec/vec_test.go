package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, Magnitude(gesture.Sample{3, 4, 0}), 1e-12)
	assert.Equal(t, 0.0, Magnitude(gesture.Sample{}))
}

func TestNormalize(t *testing.T) {
	n, err := Normalize(gesture.Sample{0, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, Magnitude(n), 1e-12)
	assert.InDelta(t, 0.6, n[1], 1e-12)

	_, err = Normalize(gesture.Sample{})
	assert.Equal(t, ErrZeroVector, err)
}

func TestDot(t *testing.T) {
	assert.Equal(t, 32.0, Dot(gesture.Sample{1, 2, 3}, gesture.Sample{4, 5, 6}))
}

func TestEstimateGravity(t *testing.T) {
	g, err := EstimateGravity(gesture.Sequence{{0, 0, 9}, {2, 4, 11}})
	require.NoError(t, err)
	assert.Equal(t, gesture.Sample{1, 2, 10}, g)

	_, err = EstimateGravity(nil)
	assert.Equal(t, ErrEmptySequence, err)
}
