package npc

import (
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RandomSource picks uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a seeded source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// SeedFromString hashes a seed phrase so matches can be replayed by name.
// An empty phrase seeds from the clock.
func SeedFromString(s string) int64 {
	if s == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(s))
}
