package genvec

import (
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/gogpu/genvec/palette"
	"github.com/gogpu/genvec/recording"
	"github.com/gogpu/genvec/rng"
)

// Fill selection thresholds on a single uniform draw: gradients take
// [0, GradientChance), tile patterns take [GradientChance, PatternChance).
const (
	GradientChance = 0.3
	PatternChance  = 0.6
)

// FillResolver turns a palette and a fill mode into a paint. Gradient and
// pattern fills are registered in the definitions registry and referenced
// by id.
type FillResolver struct {
	rand *rng.Rand
	defs *recording.Defs
	ids  io.Reader
}

// NewFillResolver returns a resolver drawing from r and registering into
// defs. Definition ids are drawn from r too, so seeded scenes get
// reproducible ids.
func NewFillResolver(r *rng.Rand, defs *recording.Defs) *FillResolver {
	return &FillResolver{rand: r, defs: defs, ids: rng.NewReader(r)}
}

// Resolve returns the paint for one filled shape.
//
//   - FillNone: always recording.NoPaint, without drawing a random value
//   - FillGradient: a new gradient when the draw falls in [0, 0.3)
//   - FillPattern: a new tile pattern when the draw falls in [0.3, 0.6)
//   - otherwise a uniformly chosen palette color
func (f *FillResolver) Resolve(pal palette.Palette, mode FillMode) recording.Paint {
	if mode == FillNone {
		return recording.NoPaint()
	}
	chance := f.rand.Float()
	switch {
	case mode == FillGradient && chance < GradientChance:
		if p, ok := f.Gradient(pal); ok {
			return p
		}
	case mode == FillPattern && chance >= GradientChance && chance < PatternChance:
		if p, ok := f.Pattern(pal); ok {
			return p
		}
	}
	return recording.Solid(pal.Pick(f.rand))
}

// Gradient registers a new gradient and returns a reference to it. 70% of
// gradients are linear with four independent endpoint percentages; the
// rest are radial. Stops are evenly spaced. It returns false when the
// definition could not be registered.
func (f *FillResolver) Gradient(pal palette.Palette) (recording.Paint, bool) {
	id := f.newID("gradient")
	var def recording.Definition
	if f.rand.Chance(0.7) {
		g := &recording.LinearGradient{
			ID: id,
			X1: f.percent(0, 100),
			Y1: f.percent(0, 100),
			X2: f.percent(0, 100),
			Y2: f.percent(0, 100),
		}
		g.Stops = f.stops(pal)
		def = g
	} else {
		g := &recording.RadialGradient{
			ID: id,
			CX: f.percent(0, 100),
			CY: f.percent(0, 100),
			R:  f.percent(50, 150),
			FX: f.percent(0, 100),
			FY: f.percent(0, 100),
		}
		g.Stops = f.stops(pal)
		def = g
	}
	if err := f.defs.Add(def); err != nil {
		return recording.Paint{}, false
	}
	return recording.URL(id), true
}

func (f *FillResolver) stops(pal palette.Palette) []recording.Stop {
	n := f.rand.IntRange(2, 4)
	stops := make([]recording.Stop, n)
	for i := range stops {
		stops[i] = recording.Stop{
			Offset:  uint8(math.Floor(float64(i) / float64(n-1) * 100)),
			Color:   pal.Pick(f.rand),
			Opacity: f.rand.Range(0.7, 1),
		}
	}
	return stops
}

// Tile contents.
const (
	tileDots = iota
	tileLines
	tileDiagonals
	tileChecker
	tileTriangles
	tileMotif
)

// Pattern registers a new tile pattern and returns a reference to it. The
// tile is 8 to 20 units square, rotated uniformly in [0, 90) degrees,
// scaled in [0.5, 1.5) and has a faint palette-colored background. It
// returns false when the definition could not be registered.
func (f *FillResolver) Pattern(pal palette.Palette) (recording.Paint, bool) {
	id := f.newID("pattern")
	size := f.rand.IntRange(8, 20)
	s := float64(size)
	t := &recording.TilePattern{
		ID:     id,
		Size:   size,
		Rotate: f.rand.Range(0, 90),
		Scale:  f.rand.Range(0.5, 1.5),
	}
	t.Background = pal.Pick(f.rand)
	t.BackgroundOpacity = f.rand.Range(0.1, 0.3)

	kind := f.rand.IntRange(tileDots, tileMotif)
	stroke := recording.Solid(pal.Pick(f.rand))
	fill := recording.Solid(pal.Pick(f.rand))
	sw := f.rand.Range(0.5, 1.5)

	line := func(x1, y1, x2, y2 float64) recording.TileElement {
		return recording.TileElement{
			Shape:       recording.Line{X1: x1, Y1: y1, X2: x2, Y2: y2},
			Fill:        recording.NoPaint(),
			Stroke:      stroke,
			StrokeWidth: sw,
		}
	}
	solid := func(shape recording.Shape, p recording.Paint) recording.TileElement {
		return recording.TileElement{Shape: shape, Fill: p, Stroke: recording.NoPaint()}
	}

	switch kind {
	case tileDots:
		t.Elements = append(t.Elements, solid(recording.Circle{CX: s / 2, CY: s / 2, R: s * f.rand.Range(0.15, 0.3)}, fill))
	case tileLines:
		t.Elements = append(t.Elements, line(0, s/2, s, s/2))
		if f.rand.Float() > 0.6 {
			t.Elements = append(t.Elements, line(s/2, 0, s/2, s))
		}
	case tileDiagonals:
		t.Elements = append(t.Elements, line(0, 0, s, s))
		if f.rand.Float() > 0.6 {
			t.Elements = append(t.Elements, line(s, 0, 0, s))
		}
	case tileChecker:
		t.Elements = append(t.Elements,
			solid(recording.Rectangle{X: 0, Y: 0, W: s / 2, H: s / 2}, fill),
			solid(recording.Rectangle{X: s / 2, Y: s / 2, W: s / 2, H: s / 2}, fill),
		)
	case tileTriangles:
		down := recording.Polygon{Points: []recording.Point{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s / 2, Y: s}}}
		t.Elements = append(t.Elements, solid(down, fill))
		if f.rand.Float() > 0.5 {
			up := recording.Polygon{Points: []recording.Point{{X: 0, Y: s}, {X: s, Y: s}, {X: s / 2, Y: 0}}}
			t.Elements = append(t.Elements, solid(up, recording.Solid(pal.Pick(f.rand))))
		}
	default:
		elem := s * 0.4
		var shape recording.Shape = recording.Rectangle{X: s/2 - elem/2, Y: s/2 - elem/2, W: elem, H: elem}
		if f.rand.Float() > 0.5 {
			shape = recording.Circle{CX: s / 2, CY: s / 2, R: elem / 2}
		}
		t.Elements = append(t.Elements, recording.TileElement{
			Shape:       shape,
			Fill:        fill,
			Stroke:      stroke,
			StrokeWidth: sw * 0.5,
		})
	}

	if err := f.defs.Add(t); err != nil {
		return recording.Paint{}, false
	}
	return recording.URL(id), true
}

func (f *FillResolver) percent(lo, hi int) uint8 {
	return uint8(f.rand.IntRange(lo, hi))
}

// newID returns "<prefix>-<uuid>" with the uuid drawn from the resolver's
// random source.
func (f *FillResolver) newID(prefix string) string {
	u, err := uuid.NewRandomFromReader(f.ids)
	if err != nil {
		u = uuid.New()
	}
	return prefix + "-" + u.String()
}
