// Package randutil builds the random sources used by the computer player.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed, so a game can be
// replayed by passing the same seed again.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns a generator for seed. A zero seed means "pick one": a fresh
// seed is drawn from the operating system and returned so it can be logged.
func Resolve(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = randomSeed()
	}
	return New(seed), seed
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return int64(rand.Uint64()>>1) | 1
	}
	// Keep it positive and non-zero so it round-trips through --seed.
	return int64(binary.LittleEndian.Uint64(b[:])>>1) | 1
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
