package genvec

import (
	"fmt"
	"strings"
)

// Pattern selects a pattern generator.
type Pattern uint8

const (
	// PatternRandom scatters circles, rotated rectangles and jittered
	// polygons uniformly over the viewport.
	PatternRandom Pattern = iota

	// PatternRecursive draws a depth-recursive fractal of circles and
	// rectangles around the viewport center.
	PatternRecursive

	// PatternGrid fills a square grid of cells with one shape each.
	PatternGrid

	// PatternQuadtree subdivides the viewport stochastically and draws a
	// shape in every leaf.
	PatternQuadtree

	// PatternFibonacci places shapes on a golden-angle spiral.
	PatternFibonacci

	// PatternMandelbrot samples the escape-time field of the Mandelbrot set.
	PatternMandelbrot

	// PatternPrime lays out the first primes on a grid or an Ulam spiral.
	PatternPrime

	// PatternTrig draws sine, cosine and tangent waves.
	PatternTrig

	// PatternBezier draws a bundle of cubic Bezier curves.
	PatternBezier

	// PatternLissajous draws a bundle of Lissajous curves.
	PatternLissajous

	// PatternUnknown is any unrecognized pattern name. The engine falls
	// back to PatternRandom for it.
	PatternUnknown
)

var patternNames = [...]string{
	PatternRandom:     "random",
	PatternRecursive:  "recursive",
	PatternGrid:       "grid",
	PatternQuadtree:   "quadtree",
	PatternFibonacci:  "fibonacci",
	PatternMandelbrot: "mandelbrot",
	PatternPrime:      "prime",
	PatternTrig:       "trig",
	PatternBezier:     "bezier",
	PatternLissajous:  "lissajous",
	PatternUnknown:    "unknown",
}

// String returns the pattern name.
func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return "unknown"
}

// ParsePattern returns the pattern with the given name. Unrecognized names
// return PatternUnknown and an error wrapping ErrUnknownPattern.
func ParsePattern(name string) (Pattern, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range patternNames[:PatternUnknown] {
		if n == s {
			return Pattern(i), nil
		}
	}
	return PatternUnknown, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode to PatternUnknown without error, so a request naming a pattern
// this build does not know still generates a scene.
func (p *Pattern) UnmarshalText(b []byte) error {
	*p, _ = ParsePattern(string(b))
	return nil
}

// Patterns returns every known pattern in declaration order.
func Patterns() []Pattern {
	out := make([]Pattern, 0, int(PatternUnknown))
	for p := PatternRandom; p < PatternUnknown; p++ {
		out = append(out, p)
	}
	return out
}

// Generator emits the primitives of one layer onto the canvas and returns
// its report. Generators draw every random value from c.Rand() and resolve
// every fill through c.Fill().
type Generator func(c *Canvas) Report

// generators is the dispatch table. PatternUnknown has no entry;
// lookupGenerator resolves it.
var generators = map[Pattern]Generator{
	PatternRandom:     generateScatter,
	PatternRecursive:  generateFractal,
	PatternGrid:       generateGrid,
	PatternQuadtree:   generateQuadtree,
	PatternFibonacci:  generateFibonacci,
	PatternMandelbrot: generateMandelbrot,
	PatternPrime:      generatePrime,
	PatternTrig:       generateTrig,
	PatternBezier:     generateBezier,
	PatternLissajous:  generateLissajous,
}

// lookupGenerator returns the generator for p, or the scatter generator and
// false when p has none.
func lookupGenerator(p Pattern) (Generator, bool) {
	if g, ok := generators[p]; ok {
		return g, true
	}
	return generateScatter, false
}
