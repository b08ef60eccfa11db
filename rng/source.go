package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// Source supplies uniform draws in [0, 1).
type Source interface {
	Next() float64
}

// Park-Miller minimal standard constants.
const (
	Modulus    = 2147483647 // 2^31 - 1
	Multiplier = 16807
)

// strongSource draws from crypto/rand.
type strongSource struct{}

// Strong returns a Source backed by crypto/rand. It is safe for concurrent
// use and gives no reproducibility guarantee.
func Strong() Source {
	return strongSource{}
}

// Next returns a float64 built from 53 random bits, so 1.0 is never produced.
func (strongSource) Next() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read never returns an error on supported platforms.
		panic("rng: crypto/rand failed: " + err.Error())
	}
	return float64(binary.LittleEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// ParkMiller is the seeded linear congruential generator
// state = state * 16807 mod (2^31 - 1).
//
// ParkMiller is not safe for concurrent use.
type ParkMiller struct {
	state int64
}

// NewParkMiller creates a generator whose state is floor(|seed|) mod (2^31-1).
// A zero (or non-finite) state is replaced by 1, the LCG's zero fixed point
// being unusable.
func NewParkMiller(seed float64) *ParkMiller {
	return &ParkMiller{state: SeedState(seed)}
}

// SeedState reduces an arbitrary seed to a valid generator state in
// [1, Modulus-1].
func SeedState(seed float64) int64 {
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		return 1
	}
	s := int64(math.Mod(math.Floor(math.Abs(seed)), Modulus))
	if s == 0 {
		return 1
	}
	return s
}

// Next advances the generator and returns (state-1)/(Modulus-1).
func (p *ParkMiller) Next() float64 {
	p.state = p.state * Multiplier % Modulus
	return float64(p.state-1) / (Modulus - 1)
}

// State returns the current generator state.
func (p *ParkMiller) State() int64 {
	return p.state
}

// Compile-time interface checks.
var (
	_ Source = strongSource{}
	_ Source = (*ParkMiller)(nil)
)
