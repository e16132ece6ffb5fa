package random

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source is the randomness capability injected into every component
// that needs initial randomness. *math/rand.Rand satisfies it,
// so tests can pass a fixed-seed rand.New(rand.NewSource(n))
// to obtain repeatable construction.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a Source seeded from the operating system's entropy pool.
func NewSource() Source {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))) // nolint: gosec
}
