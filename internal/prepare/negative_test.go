package prepare

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNegatives(t *testing.T) {
	records := GenerateNegatives(rand.New(rand.NewSource(1)), 100, 128)
	require.Len(t, records, 300)

	names := map[string]int{}
	for _, rec := range records {
		assert.Equal(t, NegativeLabel, rec.Label())
		assert.Len(t, rec.Accel, 128)
		names[rec.Name]++
	}
	assert.Equal(t, map[string]int{"negative6": 3 * 61, "negative7": 3 * 20, "negative8": 3 * 19}, names)

	// pure noise stays within +-500
	for _, rec := range records[100:200] {
		for _, s := range rec.Accel {
			for _, v := range s {
				assert.True(t, v >= -500 && v < 500)
			}
		}
	}

	// holding still jitters within +-20 of the first sample's start point
	for _, rec := range records[200:] {
		for _, s := range rec.Accel {
			for j := range s {
				assert.InDelta(t, rec.Accel[0][j], s[j], 40)
			}
		}
	}
}

func TestGenerateNegativesSeeded(t *testing.T) {
	a := GenerateNegatives(rand.New(rand.NewSource(2)), 3, 10)
	b := GenerateNegatives(rand.New(rand.NewSource(2)), 3, 10)
	assert.Equal(t, a, b)
}
