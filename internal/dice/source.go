package dice

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source supplies the uniform random integers the evaluator consumes.
// Intn must return a value in [0, n) for n > 0. A *rand.Rand satisfies
// Source.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic Source. The same seed always
// produces the same draw sequence.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewRandomSource returns a Source seeded from crypto entropy. Each
// call returns an independent generator, so concurrent callers never
// share state.
func NewRandomSource() Source {
	return rand.New(rand.NewSource(NewSeed()))
}

// NewSeed draws a seed from crypto entropy. Callers that want an
// unpredictable roll they can still replay later seed a Source with it
// and record the value alongside the result.
func NewSeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		// crypto/rand.Read should never fail on a properly configured system
		panic(fmt.Sprintf("failed to read random seed: %v", err))
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
