package config

import (
	"math/rand"
	"time"
)

// NewRand returns the random source for a run and the seed it was built from.
// A zero Seed picks one from the clock.
func (c *Config) NewRand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
