package rng

import "math"

// Rand wraps a Source with convenience draws.
// A Rand is as safe for concurrent use as its Source.
type Rand struct {
	src Source
}

// New returns a Rand drawing from src. A nil src selects Strong.
func New(src Source) *Rand {
	if src == nil {
		src = Strong()
	}
	return &Rand{src: src}
}

// Source returns the underlying source.
func (r *Rand) Source() Source {
	return r.src
}

// Float returns a uniform draw in [0, 1).
func (r *Rand) Float() float64 {
	return r.src.Next()
}

// Range returns a uniform draw in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return r.src.Next()*(max-min) + min
}

// IntRange returns a uniform integer in [min, max], both inclusive.
func (r *Rand) IntRange(min, max int) int {
	if max < min {
		return min
	}
	return int(math.Floor(r.Range(float64(min), float64(max)+1)))
}

// Intn returns a uniform integer in [0, n). It returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.src.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance reports whether a draw falls below p.
func (r *Rand) Chance(p float64) bool {
	return r.src.Next() < p
}

// Pick returns a uniformly chosen element of items, or the zero value when
// items is empty.
func Pick[T any](r *Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](r *Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Reader adapts a Rand to io.Reader, one draw per byte. Identifiers built
// from a seeded Reader are reproducible.
type Reader struct {
	r *Rand
}

// NewReader returns an io.Reader drawing from r.
func NewReader(r *Rand) *Reader {
	return &Reader{r: r}
}

// Read fills p and never fails.
func (rd *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rd.r.Intn(256))
	}
	return len(p), nil
}
