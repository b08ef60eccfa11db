package genvec

import (
	"math"
	"time"

	"github.com/gogpu/genvec/rng"
)

// SeedInputs are the values a seeded generation mixes into its seed.
type SeedInputs struct {
	Now       time.Time
	UseTime   bool
	UseCursor bool
	Cursor    *Point
	CapturedX *float64
	CapturedY *float64
}

// DeriveSeed computes the seed of a time- or cursor-seeded generation.
//
// The base is Now in Unix milliseconds. UseTime adds the elapsed fraction
// of the local day scaled by 1e9. UseCursor adds sin(x*0.01)*1e5 and
// cos(y*0.01)*1e5 of the live cursor plus sin(capturedX)*1e4 and
// cos(capturedY)*1e4; absent coordinates contribute nothing.
func DeriveSeed(in SeedInputs) float64 {
	seed := float64(in.Now.UnixMilli())
	if in.UseTime {
		seed += TimeOfDay(in.Now) * 1e9
	}
	if in.UseCursor {
		if in.Cursor != nil {
			seed += math.Sin(in.Cursor.X*0.01) * 1e5
			seed += math.Cos(in.Cursor.Y*0.01) * 1e5
		}
		if in.CapturedX != nil {
			seed += math.Sin(*in.CapturedX) * 1e4
		}
		if in.CapturedY != nil {
			seed += math.Cos(*in.CapturedY) * 1e4
		}
	}
	return seed
}

// TimeOfDay returns the elapsed fraction of t's day in [0, 1).
func TimeOfDay(t time.Time) float64 {
	h, m, s := t.Clock()
	secs := float64(h*3600+m*60+s) + float64(t.Nanosecond()/int(time.Millisecond))/1000
	return secs / 86400
}

// SourceFactory builds the random source of one generation call. seeded
// is false when neither seeding flag nor an explicit seed is set.
type SourceFactory func(seed float64, seeded bool) rng.Source

// DefaultSourceFactory returns a Park-Miller source for seeded calls and
// the crypto/rand source otherwise.
func DefaultSourceFactory(seed float64, seeded bool) rng.Source {
	if seeded {
		return rng.NewParkMiller(seed)
	}
	return rng.Strong()
}

// seedFor returns the seed of o and whether o is seeded. An explicit Seed
// wins over the time and cursor derivation.
func seedFor(o Options, now time.Time) (float64, bool) {
	switch {
	case o.Seed != nil:
		return *o.Seed, true
	case o.UseTimeSeed || o.UseCursorSeed:
		return DeriveSeed(SeedInputs{
			Now:       now,
			UseTime:   o.UseTimeSeed,
			UseCursor: o.UseCursorSeed,
			Cursor:    o.Cursor,
			CapturedX: o.CapturedX,
			CapturedY: o.CapturedY,
		}), true
	default:
		return 0, false
	}
}
