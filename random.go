package jigsaw

import (
	"crypto/sha256"
	"math"
	"math/rand/v2"

	"honnef.co/go/jigsaw/curve"
)

// Random is a deterministic stream of pseudo-random numbers derived from a
// string seed. Equal seeds produce equal streams on every platform.
//
// A Random is not safe for concurrent use.
type Random struct {
	src *rand.Rand
}

// NewRandom returns the stream for seed. The seed is hashed into the key of a
// ChaCha8 generator.
func NewRandom(seed string) *Random {
	return &Random{src: rand.New(rand.NewChaCha8(sha256.Sum256([]byte(seed))))}
}

// Float64 returns the next value of the stream, in [0, 1).
func (r *Random) Float64() float64 {
	return r.src.Float64()
}

// IntN returns a value in [0, n), or 0 if n <= 0.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.IntN(n)
}

func (r *Random) coin() bool {
	return r.Float64() < 0.5
}

// inDisk returns a uniformly distributed point in the disk of the given
// radius, rounded to 5 significant digits. It consumes two values.
func (r *Random) inDisk(radius float64) curve.Vec2 {
	d := radius * math.Sqrt(r.Float64())
	th := r.Float64() * 2 * math.Pi
	return curve.VecFromPolar(d, th).Map(roundPrecise)
}
