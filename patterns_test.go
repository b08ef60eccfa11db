package genvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/genvec/recording"
)

func patternOptions(p Pattern) Options {
	o := DefaultOptions()
	o.Pattern = p
	return o
}

func TestParsePattern(t *testing.T) {
	for _, p := range Patterns() {
		got, err := ParsePattern(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePattern("spirograph")
	assert.ErrorIs(t, err, ErrUnknownPattern)
	assert.Equal(t, PatternUnknown, got)
}

func TestEveryPatternHasGenerator(t *testing.T) {
	for _, p := range Patterns() {
		_, ok := lookupGenerator(p)
		assert.True(t, ok, p.String())
	}
	_, ok := lookupGenerator(PatternUnknown)
	assert.False(t, ok)
}

func TestEveryPatternRecordsReportedElements(t *testing.T) {
	for _, p := range Patterns() {
		if p == PatternQuadtree {
			continue // counts governor units, see TestQuadtreeCeiling
		}
		t.Run(p.String(), func(t *testing.T) {
			c := newTestCanvas(t, patternOptions(p), 21)
			gen, _ := lookupGenerator(p)
			rep := gen(c)
			assert.Positive(t, rep.ElementCount)
			assert.LessOrEqual(t, rep.ElementCount, c.Len())
		})
	}
}

func TestScatterCount(t *testing.T) {
	assert.Equal(t, 50, ScatterCount(5, 50, 1))
	assert.Equal(t, 0, ScatterCount(1, 1, 1))
	assert.Equal(t, 2000, ScatterCount(50, 100, 2))

	c := newTestCanvas(t, patternOptions(PatternRandom), 1)
	rep := generateScatter(c)
	assert.Equal(t, 50, rep.ElementCount)
	assert.Equal(t, 50, c.Len())
	assert.Equal(t, len(testPalette), rep.Metric("uniqueColors"))
}

func TestFractalCeiling(t *testing.T) {
	o := patternOptions(PatternRecursive)
	o.Complexity = 50
	o.MaxRecursionDepth = 16
	o.Density = 100
	c := newTestCanvas(t, o, 42)

	rep := generateFractal(c)
	gov := c.Governor()
	assert.LessOrEqual(t, gov.Visits(), DefaultRecursionCeiling)
	assert.True(t, gov.CeilingHit())
	assert.Equal(t, true, rep.Metric("ceilingHit"))
	assert.Equal(t, gov.Visits(), rep.ElementCount)
	assert.Equal(t, rep.ElementCount, c.Len())
}

func TestFractalDepthLimit(t *testing.T) {
	o := patternOptions(PatternRecursive)
	o.MaxRecursionDepth = 1
	c := newTestCanvas(t, o, 42)
	rep := generateFractal(c)
	assert.Equal(t, 1, rep.ElementCount)
	assert.Equal(t, 1, rep.Metric("recursionDepthReached"))
	assert.Equal(t, false, rep.Metric("ceilingHit"))

	o.MaxRecursionDepth = 3
	c = newTestCanvas(t, o, 42)
	rep = generateFractal(c)
	assert.LessOrEqual(t, rep.Metric("recursionDepthReached"), 3)
	assert.Greater(t, rep.ElementCount, 1)
}

func TestSubdivideProbability(t *testing.T) {
	assert.InDelta(t, 0.8, SubdivideProbability(5, 50, 0, 5), 1e-9)
	assert.InDelta(t, 0.242, SubdivideProbability(1, 1, 5, 5), 1e-9)
	assert.Equal(t, 1.0, SubdivideProbability(50, 100, 0, 5))
	assert.GreaterOrEqual(t, SubdivideProbability(1, 1, 16, 1), 0.0)
}

func TestQuadtreeCeiling(t *testing.T) {
	o := patternOptions(PatternQuadtree)
	o.Complexity = 50
	o.MaxRecursionDepth = 16
	o.Density = 100
	c := newTestCanvas(t, o, 42)

	rep := generateQuadtree(c)
	gov := c.Governor()
	assert.LessOrEqual(t, gov.Visits(), DefaultRecursionCeiling)
	assert.True(t, gov.CeilingHit())
	assert.Equal(t, gov.Count(), rep.ElementCount)
	assert.Equal(t, true, rep.Metric("ceilingHit"))
}

func TestQuadtreeDepth(t *testing.T) {
	o := patternOptions(PatternQuadtree)
	o.MaxRecursionDepth = 3
	c := newTestCanvas(t, o, 5)
	rep := generateQuadtree(c)
	depth, ok := rep.Metric("maxDepthReached").(int)
	require.True(t, ok)
	assert.GreaterOrEqual(t, depth, 1)
	assert.LessOrEqual(t, depth, 3)
	assert.Positive(t, c.Len())
}

func TestGrid(t *testing.T) {
	assert.Equal(t, 6, GridCellsPerSide(3, 2))
	assert.Equal(t, 2, GridCellsPerSide(1, 1))
	assert.Equal(t, 95, GridCellsPerSide(50, 20))

	o := patternOptions(PatternGrid)
	o.Complexity = 3
	o.Repetition = 2
	o.Density = 100
	c := newTestCanvas(t, o, 8)
	rep := generateGrid(c)

	assert.Equal(t, "6x6", rep.Metric("gridSize"))
	assert.Equal(t, 36, rep.Metric("cellCount"))
	assert.GreaterOrEqual(t, rep.ElementCount, 36)
	assert.Equal(t, rep.ElementCount, c.Len())
}

func TestGridLines(t *testing.T) {
	o := patternOptions(PatternGrid)
	o.Complexity = 5
	o.Density = 1
	c := newTestCanvas(t, o, 8)
	generateGrid(c)
	o.Density = 31
	c2 := newTestCanvas(t, o, 8)
	generateGrid(c2)

	lines := func(c *Canvas) int {
		n := 0
		for _, p := range c.rec.Finish().Primitives() {
			if l, ok := p.Shape.(recording.Line); ok && (l.X1 == 0 || l.Y1 == 0) && (l.X2 == c.Width() || l.Y2 == c.Height()) {
				n++
			}
		}
		return n
	}
	cells := GridCellsPerSide(5, 1)
	assert.Zero(t, lines(c))
	assert.GreaterOrEqual(t, lines(c2), 2*(cells+1))
}

func TestFibonacciMinimum(t *testing.T) {
	o := patternOptions(PatternFibonacci)
	o.Complexity = 1
	o.Density = 1
	c := newTestCanvas(t, o, 13)
	rep := generateFibonacci(c)
	assert.Equal(t, 10, rep.Metric("numElementsGenerated"))
	assert.Equal(t, 10, rep.ElementCount)
	assert.Equal(t, 10, c.Len())
	assert.InDelta(t, 1.618034, rep.Metric("goldenRatio"), 1e-6)
	assert.InDelta(t, 2.399963, GoldenAngle, 1e-6)
}

func TestFibonacciSpiral(t *testing.T) {
	o := patternOptions(PatternFibonacci)
	o.Complexity = 6
	o.Density = 60
	c := newTestCanvas(t, o, 13)
	rep := generateFibonacci(c)
	n := rep.Metric("numElementsGenerated").(int)
	assert.Equal(t, 180, n)
	assert.Equal(t, n+1, rep.ElementCount)
	_, isPath := c.rec.Finish().Primitives()[n].Shape.(*recording.Path)
	assert.True(t, isPath)
}

func TestEscapeTime(t *testing.T) {
	assert.Equal(t, 115, EscapeTime(0.25, 0, 115))
	assert.Equal(t, 50, EscapeTime(0, 0, 50))
	assert.Equal(t, 50, EscapeTime(-1, 0, 50))
	assert.LessOrEqual(t, EscapeTime(1, 1, 115), 2)
	assert.Equal(t, 1, EscapeTime(3, 0, 115))
}

func TestMandelbrot(t *testing.T) {
	assert.Equal(t, 10, MandelbrotResolution(1))
	assert.Equal(t, 35, MandelbrotResolution(5))
	assert.Equal(t, 100, MandelbrotResolution(50))
	assert.Equal(t, 115, MandelbrotMaxIter(5))

	o := patternOptions(PatternMandelbrot)
	o.Density = 100
	c := newTestCanvas(t, o, 3)
	rep := generateMandelbrot(c)
	assert.Equal(t, 35, rep.Metric("resolution"))
	assert.Equal(t, 115, rep.Metric("maxIterations"))
	assert.Positive(t, rep.ElementCount)
	assert.Less(t, rep.ElementCount, 35*35)
	for _, p := range c.rec.Finish().Primitives() {
		require.Equal(t, recording.PaintSolid, p.Fill.Kind)
		assert.Contains(t, testPalette, p.Fill.Color)
	}
}

func TestIsPrime(t *testing.T) {
	var got []int
	for n := -3; n <= 50; n++ {
		if IsPrime(n) {
			got = append(got, n)
		}
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, got)
	assert.True(t, IsPrime(7919))
	assert.False(t, IsPrime(7917))
	assert.False(t, IsPrime(25))
	assert.False(t, IsPrime(49))
}

func TestFirstPrimes(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5, 7, 11}, FirstPrimes(5))
	assert.Nil(t, FirstPrimes(0))
	assert.Len(t, FirstPrimes(1000), 1000)
	assert.Equal(t, 7919, FirstPrimes(1000)[999])
}

func TestPrimeGenerator(t *testing.T) {
	o := patternOptions(PatternPrime)
	o.Complexity = 1
	o.Density = 10
	c := newTestCanvas(t, o, 2)
	rep := generatePrime(c)
	assert.Equal(t, 10, rep.ElementCount)
	assert.Equal(t, 10, rep.Metric("primeCount"))
	assert.Equal(t, 29, rep.Metric("largestPrime"))
	assert.Contains(t, []any{"grid", "spiral"}, rep.Metric("layout"))
	assert.GreaterOrEqual(t, c.Len(), 10)
}

func TestTrig(t *testing.T) {
	o := patternOptions(PatternTrig)
	o.Complexity = 3
	o.Repetition = 2
	c := newTestCanvas(t, o, 6)
	rep := generateTrig(c)
	assert.Equal(t, 6, rep.ElementCount)
	assert.Equal(t, 60, rep.Metric("pointsPerWave"))
	for _, p := range c.rec.Finish().Primitives() {
		path, ok := p.Shape.(*recording.Path)
		require.True(t, ok)
		assert.Equal(t, 61, path.Len())
		assert.True(t, p.Fill.IsNone())
		for _, s := range path.Segments {
			assert.GreaterOrEqual(t, s.Pts[0].Y, 0.0)
			assert.LessOrEqual(t, s.Pts[0].Y, c.Height())
		}
	}
}

func TestBezierCaptured(t *testing.T) {
	o := patternOptions(PatternBezier)
	o.CapturedX = Float(10)
	o.CapturedY = Float(20)
	o.CapturedV = &Point{X: 300, Y: 400}
	c := newTestCanvas(t, o, 4)
	rep := generateBezier(c)

	assert.Equal(t, 12, rep.ElementCount)
	assert.Equal(t, true, rep.Metric("captured"))
	for _, p := range c.rec.Finish().Primitives() {
		path, ok := p.Shape.(*recording.Path)
		require.True(t, ok)
		require.Len(t, path.Segments, 2)
		assert.Equal(t, recording.Point{X: 10, Y: 20}, path.Segments[0].Pts[0])
		assert.Equal(t, recording.VerbCubicTo, path.Segments[1].Verb)
		assert.Equal(t, recording.Point{X: 300, Y: 400}, path.Segments[1].Pts[2])
		assert.GreaterOrEqual(t, p.Base.StrokeWidth, 0.5)
	}
}

func TestBezierUncaptured(t *testing.T) {
	c := newTestCanvas(t, patternOptions(PatternBezier), 4)
	rep := generateBezier(c)
	assert.Equal(t, false, rep.Metric("captured"))
}

func TestLissajous(t *testing.T) {
	o := patternOptions(PatternLissajous)
	c := newTestCanvas(t, o, 10)
	rep := generateLissajous(c)
	assert.Equal(t, 3, rep.ElementCount)
	assert.Equal(t, 100, rep.Metric("stepsPerCurve"))
	assert.Equal(t, 3, c.Len())

	cx, cy := c.Width()/2, c.Height()/2
	for _, p := range c.rec.Finish().Primitives() {
		path := p.Shape.(*recording.Path)
		for _, s := range path.Segments {
			assert.LessOrEqual(t, math.Abs(s.Pts[0].X-cx), c.Width()*0.4+1e-9)
			assert.LessOrEqual(t, math.Abs(s.Pts[0].Y-cy), c.Height()*0.4+1e-9)
		}
	}
}
