// Package randutil centralises how simulation RNG streams are built so
// that every call site gets reproducible sequences from the same inputs.
package randutil

import (
	"hash/fnv"
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// 64-bit seed. The helper derives the two seeds required by rand/v2's
// PCG through a splitmix-style finalizer.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))
}

// ForRun returns the RNG stream for one simulation attempt. A non-empty
// seed string yields a fully reproducible stream for the same (seed,
// attempt) pair; an empty seed mixes the current time so repeated runs
// differ while attempts within a run still get independent streams.
func ForRun(seed string, attempt int) *rand.Rand {
	var base uint64
	if seed == "" {
		base = mix(uint64(time.Now().UnixNano()))
	} else {
		h := fnv.New64a()
		h.Write([]byte(seed))
		base = h.Sum64()
	}
	return New(base + uint64(attempt)*goldenRatio64)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
