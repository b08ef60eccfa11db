package genvec

import (
	"github.com/gogpu/genvec/palette"
	"github.com/gogpu/genvec/recording"
	"github.com/gogpu/genvec/rng"
)

// Canvas is the surface handle passed to a generator for one layer. It
// bundles the recorder, the layer's options and palette, the random source,
// the fill resolver and the recursion governor.
type Canvas struct {
	rec   *recording.Recorder
	opts  Options
	pal   palette.Palette
	rand  *rng.Rand
	fills *FillResolver
	gov   *Governor
	layer int
}

// NewCanvas returns a Canvas for layer 0 of rec with its own fill resolver
// and governor. The engine builds canvases internally; NewCanvas exists for
// running a single generator directly.
func NewCanvas(rec *recording.Recorder, opts Options, pal palette.Palette, r *rng.Rand) *Canvas {
	if len(pal) == 0 {
		pal = palette.Safety.Clone()
	}
	return &Canvas{
		rec:   rec,
		opts:  opts,
		pal:   pal,
		rand:  r,
		fills: NewFillResolver(r, rec.Defs()),
		gov:   NewGovernor(DefaultRecursionCeiling),
	}
}

// Options returns the layer-local options.
func (c *Canvas) Options() Options { return c.opts }

// Palette returns the palette. Generators must not modify it.
func (c *Canvas) Palette() palette.Palette { return c.pal }

// Rand returns the random source of the generation call.
func (c *Canvas) Rand() *rng.Rand { return c.rand }

// Governor returns the recursion governor.
func (c *Canvas) Governor() *Governor { return c.gov }

// Layer returns the layer index.
func (c *Canvas) Layer() int { return c.layer }

// Width returns the viewport width.
func (c *Canvas) Width() float64 { return float64(c.opts.Viewport.Width) }

// Height returns the viewport height.
func (c *Canvas) Height() float64 { return float64(c.opts.Viewport.Height) }

// Len returns the number of primitives recorded so far in the scene.
func (c *Canvas) Len() int { return c.rec.Len() }

// Fill resolves the paint of one filled shape.
func (c *Canvas) Fill() recording.Paint {
	return c.fills.Resolve(c.pal, c.opts.FillMode)
}

// Stroke returns the stroke color paint.
func (c *Canvas) Stroke() recording.Paint {
	return recording.Solid(c.opts.StrokeColor)
}

// Color returns a uniformly chosen palette color.
func (c *Canvas) Color() string {
	return c.pal.Pick(c.rand)
}

// Add records a primitive.
func (c *Canvas) Add(shape recording.Shape, style recording.Style) *recording.Primitive {
	return c.rec.Add(shape, style)
}

// Shape records a shape with the given fill, the stroke color and the
// given stroke width and opacity.
func (c *Canvas) Shape(shape recording.Shape, fill recording.Paint, strokeWidth, opacity float64) *recording.Primitive {
	return c.rec.Add(shape, recording.Style{
		Fill:        fill,
		Stroke:      c.Stroke(),
		StrokeWidth: strokeWidth,
		Opacity:     opacity,
	})
}

// Rotated is Shape with a rotation of angle degrees about (cx, cy).
func (c *Canvas) Rotated(shape recording.Shape, fill recording.Paint, strokeWidth, opacity, angle, cx, cy float64) *recording.Primitive {
	return c.rec.Add(shape, recording.Style{
		Fill:        fill,
		Stroke:      c.Stroke(),
		StrokeWidth: strokeWidth,
		Opacity:     opacity,
		Rotation:    &recording.Rotation{Angle: angle, CX: cx, CY: cy},
	})
}

// Stroked records an unfilled shape outlined with the given color.
func (c *Canvas) Stroked(shape recording.Shape, color string, strokeWidth, opacity float64) *recording.Primitive {
	return c.rec.Add(shape, recording.Style{
		Fill:        recording.NoPaint(),
		Stroke:      recording.Solid(color),
		StrokeWidth: strokeWidth,
		Opacity:     opacity,
	})
}
