package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// mustBePositive enforces the Intn precondition shared by every Source here.
func mustBePositive(n int) {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
}

// systemSource draws faces from the operating system's entropy pool. It is the
// default when no seed is configured, so unseeded runs differ every time.
type systemSource struct{}

// NewCryptoSource returns the unseeded default Source.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return systemSource{}
}

// Intn returns a uniform draw in [0, n), panicking if n <= 0 or if the
// entropy pool cannot be read.
func (systemSource) Intn(n int) int {
	mustBePositive(n)
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("dice: reading system entropy: %v", err))
	}
	return int(v.Int64())
}

// seededSource implements Source with a deterministic PCG generator.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a Source whose sequence is fully determined by seed.
// Two sources built from the same seed yield the same values for the same calls.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	mustBePositive(n)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
