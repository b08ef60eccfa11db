// Package raster provides a PNG preview backend for the recording system.
// It rasterizes primitives with golang.org/x/image/vector.
//
// # Supported Features
//
//   - Circles, rectangles, ellipses, polygons, lines and paths
//   - Solid fills and strokes with per-primitive opacity
//   - Rotation and animated spin transforms
//   - PNG output
//
// # Limitations
//
// Gradient fills are drawn with their first stop color and tile patterns
// with their background color; the SVG backend renders both exactly.
// The inline error marker is drawn as a red bar along the top edge since the
// backend has no text support.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/genvec/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("png")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("scene.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/genvec/palette"
	"github.com/gogpu/genvec/recording"
)

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	})
}

// Segments used to flatten a full circle.
const circleSteps = 64

// Backend renders recordings to an RGBA image.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	defs   map[string]recording.Definition
	width  int
	height int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates the image and paints the background.
func (b *Backend) Begin(width, height int, background string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.z = vector.NewRasterizer(width, height)
	b.defs = make(map[string]recording.Definition)

	bg, err := parseColor(background, 1)
	if err != nil {
		bg = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return nil
}

// Define stores the definition for fill lookups.
func (b *Backend) Define(def recording.Definition) error {
	b.defs[def.DefID()] = def
	return nil
}

// BeginLayer is a no-op; layers are composited in drawing order.
func (b *Backend) BeginLayer(int) {}

// EndLayer is a no-op.
func (b *Backend) EndLayer() {}

// Draw rasterizes one primitive using its Current attributes.
func (b *Backend) Draw(p *recording.Primitive) {
	m := p.Transform()
	outline, closed := flatten(p.Geometry())
	if len(outline) == 0 {
		return
	}
	for i := range outline {
		for j := range outline[i] {
			outline[i][j].X, outline[i][j].Y = m.TransformPoint(outline[i][j].X, outline[i][j].Y)
		}
	}

	if closed && !p.Fill.IsNone() {
		if c, ok := b.paintColor(p.Fill, p.Current.Opacity); ok {
			b.fill(outline, c)
		}
	}
	if !p.Stroke.IsNone() && p.Current.StrokeWidth > 0 {
		if c, ok := b.paintColor(p.Stroke, p.Current.Opacity); ok {
			b.stroke(outline, closed, p.Current.StrokeWidth*m.ScaleFactor(), c)
		}
	}
}

// DrawError paints a red bar along the top edge.
func (b *Backend) DrawError(string) {
	bar := image.Rect(0, 0, b.width, min(4, b.height))
	draw.Draw(b.img, bar, image.NewUniform(color.NRGBA{R: 255, A: 255}), image.Point{}, draw.Over)
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.img == nil {
		return errors.New("raster: End called before Begin")
	}
	return nil
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.img
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// paintColor resolves a paint to a flat color.
func (b *Backend) paintColor(p recording.Paint, opacity float64) (color.NRGBA, bool) {
	switch p.Kind {
	case recording.PaintSolid:
		c, err := parseColor(p.Color, opacity)
		return c, err == nil
	case recording.PaintRef:
		switch d := b.defs[p.Ref].(type) {
		case *recording.LinearGradient:
			return stopColor(d.Stops, opacity)
		case *recording.RadialGradient:
			return stopColor(d.Stops, opacity)
		case *recording.TilePattern:
			c, err := parseColor(d.Background, opacity)
			return c, err == nil
		}
	}
	return color.NRGBA{}, false
}

func stopColor(stops []recording.Stop, opacity float64) (color.NRGBA, bool) {
	if len(stops) == 0 {
		return color.NRGBA{}, false
	}
	c, err := parseColor(stops[0].Color, opacity*stops[0].Opacity)
	return c, err == nil
}

func (b *Backend) fill(outline [][]recording.Point, c color.NRGBA) {
	b.z.Reset(b.width, b.height)
	for _, poly := range outline {
		addPolygon(b.z, poly)
	}
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{})
}

// stroke fills one quad per segment. Quads are emitted with a consistent
// winding so overlaps accumulate instead of cancelling.
func (b *Backend) stroke(outline [][]recording.Point, closed bool, width float64, c color.NRGBA) {
	half := math.Max(width, 0.5) / 2
	b.z.Reset(b.width, b.height)
	for _, poly := range outline {
		n := len(poly)
		segs := n - 1
		if closed {
			segs = n
		}
		for i := 0; i < segs; i++ {
			p0, p1 := poly[i], poly[(i+1)%n]
			dx, dy := p1.X-p0.X, p1.Y-p0.Y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			nx, ny := -dy/l*half, dx/l*half
			addPolygon(b.z, []recording.Point{
				{X: p0.X + nx, Y: p0.Y + ny},
				{X: p1.X + nx, Y: p1.Y + ny},
				{X: p1.X - nx, Y: p1.Y - ny},
				{X: p0.X - nx, Y: p0.Y - ny},
			})
		}
	}
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{})
}

func addPolygon(z *vector.Rasterizer, poly []recording.Point) {
	if len(poly) < 3 {
		return
	}
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func signedArea(poly []recording.Point) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// flatten converts a shape to polylines. closed reports whether the shape
// encloses an area that can be filled.
func flatten(s recording.Shape) (outline [][]recording.Point, closed bool) {
	switch g := s.(type) {
	case recording.Circle:
		return [][]recording.Point{ellipsePoints(g.CX, g.CY, g.R, g.R)}, true
	case recording.Ellipse:
		return [][]recording.Point{ellipsePoints(g.CX, g.CY, g.RX, g.RY)}, true
	case recording.Rectangle:
		return [][]recording.Point{{
			{X: g.X, Y: g.Y}, {X: g.X + g.W, Y: g.Y},
			{X: g.X + g.W, Y: g.Y + g.H}, {X: g.X, Y: g.Y + g.H},
		}}, true
	case recording.Polygon:
		pts := make([]recording.Point, len(g.Points))
		copy(pts, g.Points)
		return [][]recording.Point{pts}, true
	case recording.Line:
		return [][]recording.Point{{{X: g.X1, Y: g.Y1}, {X: g.X2, Y: g.Y2}}}, false
	case *recording.Path:
		return flattenPath(g), false
	}
	return nil, false
}

func ellipsePoints(cx, cy, rx, ry float64) []recording.Point {
	pts := make([]recording.Point, circleSteps)
	for i := range pts {
		a := float64(i) / circleSteps * 2 * math.Pi
		pts[i] = recording.Point{X: cx + math.Cos(a)*rx, Y: cy + math.Sin(a)*ry}
	}
	return pts
}

func flattenPath(p *recording.Path) [][]recording.Point {
	var out [][]recording.Point
	var cur []recording.Point
	last := func() recording.Point {
		if len(cur) == 0 {
			return recording.Point{}
		}
		return cur[len(cur)-1]
	}
	for _, s := range p.Segments {
		switch s.Verb {
		case recording.VerbMoveTo:
			if len(cur) > 1 {
				out = append(out, cur)
			}
			cur = []recording.Point{s.Pts[0]}
		case recording.VerbLineTo:
			cur = append(cur, s.Pts[0])
		case recording.VerbCubicTo:
			p0 := last()
			const steps = 16
			for i := 1; i <= steps; i++ {
				t := float64(i) / steps
				cur = append(cur, cubicAt(p0, s.Pts[0], s.Pts[1], s.Pts[2], t))
			}
		case recording.VerbArcTo:
			steps := max(2, int(math.Ceil(math.Abs(s.Sweep)/(2*math.Pi)*circleSteps)))
			for i := 1; i <= steps; i++ {
				a := s.Start + s.Sweep*float64(i)/float64(steps)
				cur = append(cur, recording.Point{
					X: s.Pts[0].X + math.Cos(a)*s.Radius,
					Y: s.Pts[0].Y + math.Sin(a)*s.Radius,
				})
			}
		}
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

func cubicAt(p0, p1, p2, p3 recording.Point, t float64) recording.Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return recording.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func parseColor(hex string, opacity float64) (color.NRGBA, error) {
	c, err := palette.Parse(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, bl := c.Clamped().RGB255()
	a := math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(a * 255))}, nil
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
