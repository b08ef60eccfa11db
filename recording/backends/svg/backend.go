// Package svg provides the SVG export backend for the recording system,
// written with github.com/ajstarks/svgo.
//
// svgo works in integer coordinates, so the document uses a viewBox Precision
// times larger than the viewport and every coordinate is scaled by Precision
// before rounding.
//
// # Example
//
//	import _ "github.com/gogpu/genvec/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.WriterBackend).WriteTo(w)
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/genvec/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Precision is the number of viewBox units per user unit.
const Precision = 10

// Backend writes recordings as SVG markup.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	buf        bytes.Buffer
	canvas     *svgo.SVG
	background string
	width      int
	height     int
	pending    []recording.Definition
	flushed    bool
	ended      bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts the document.
func (b *Backend) Begin(width, height int, background string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.buf.Reset()
	b.canvas = svgo.New(&b.buf)
	b.width, b.height = width, height
	b.background = background
	b.pending = b.pending[:0]
	b.flushed, b.ended = false, false
	b.canvas.Startview(width, height, 0, 0, width*Precision, height*Precision)
	return nil
}

// Define queues a definition; all definitions are written in one <defs>
// block before the first layer.
func (b *Backend) Define(def recording.Definition) error {
	if b.flushed {
		return errors.New("svg: Define after drawing started")
	}
	b.pending = append(b.pending, def)
	return nil
}

// flush writes the <defs> block and the background.
func (b *Backend) flush() {
	if b.flushed {
		return
	}
	b.flushed = true
	if len(b.pending) > 0 {
		b.canvas.Def()
		for _, def := range b.pending {
			b.writeDefinition(def)
		}
		b.canvas.DefEnd()
	}
	if !isWhite(b.background) {
		b.canvas.Rect(0, 0, b.width*Precision, b.height*Precision, attr("fill", b.background))
	}
}

// BeginLayer opens a <g id="layer-N"> group.
func (b *Backend) BeginLayer(index int) {
	b.flush()
	b.canvas.Gid(fmt.Sprintf("layer-%d", index))
}

// EndLayer closes the layer group.
func (b *Backend) EndLayer() {
	b.canvas.Gend()
}

// Draw writes one primitive using its Current attributes.
func (b *Backend) Draw(p *recording.Primitive) {
	b.flush()
	s := make([]string, 0, 5)
	if p.Shape.Kind() != recording.KindLine {
		s = append(s, attr("fill", p.Fill.String()))
	}
	s = append(s,
		attr("stroke", p.Stroke.String()),
		attr("stroke-width", num(p.Current.StrokeWidth*Precision)),
		attr("opacity", num(p.Current.Opacity)),
	)
	if t := transform(p); t != "" {
		s = append(s, attr("transform", t))
	}
	b.writeShape(p.Geometry(), s)
}

// DrawError writes the inline error marker.
func (b *Backend) DrawError(msg string) {
	b.flush()
	b.canvas.Text(10*Precision, 50*Precision, "Error: "+msg,
		attr("fill", "red"),
		attr("font-family", "sans-serif"),
		attr("font-size", strconv.Itoa(16*Precision)+"px"),
	)
}

// End closes the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return errors.New("svg: End called before Begin")
	}
	if b.ended {
		return nil
	}
	b.flush()
	b.canvas.End()
	b.ended = true
	return nil
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the document to a file.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

// Bytes returns the document.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *Backend) writeDefinition(def recording.Definition) {
	switch d := def.(type) {
	case *recording.LinearGradient:
		b.canvas.LinearGradient(d.ID, d.X1, d.Y1, d.X2, d.Y2, offcolors(d.Stops))
	case *recording.RadialGradient:
		b.canvas.RadialGradient(d.ID, d.CX, d.CY, d.R, d.FX, d.FY, offcolors(d.Stops))
	case *recording.TilePattern:
		size := d.Size * Precision
		b.canvas.Pattern(d.ID, 0, 0, size, size, "user",
			attr("patternTransform", fmt.Sprintf("rotate(%s) scale(%s)", num(d.Rotate), num(d.Scale))))
		if d.Background != "" {
			b.canvas.Rect(0, 0, size, size, attr("fill", d.Background), attr("opacity", num(d.BackgroundOpacity)))
		}
		for _, e := range d.Elements {
			s := []string{attr("fill", e.Fill.String()), attr("stroke", e.Stroke.String())}
			if e.StrokeWidth > 0 {
				s = append(s, attr("stroke-width", num(e.StrokeWidth*Precision)))
			}
			b.writeShape(e.Shape, s)
		}
		b.canvas.PatternEnd()
	}
}

func (b *Backend) writeShape(shape recording.Shape, s []string) {
	switch g := shape.(type) {
	case recording.Circle:
		b.canvas.Circle(sc(g.CX), sc(g.CY), sc(g.R), s...)
	case recording.Rectangle:
		b.canvas.Rect(sc(g.X), sc(g.Y), sc(g.W), sc(g.H), s...)
	case recording.Ellipse:
		b.canvas.Ellipse(sc(g.CX), sc(g.CY), sc(g.RX), sc(g.RY), s...)
	case recording.Polygon:
		xs := make([]int, len(g.Points))
		ys := make([]int, len(g.Points))
		for i, pt := range g.Points {
			xs[i], ys[i] = sc(pt.X), sc(pt.Y)
		}
		b.canvas.Polygon(xs, ys, s...)
	case recording.Line:
		b.canvas.Line(sc(g.X1), sc(g.Y1), sc(g.X2), sc(g.Y2), s...)
	case *recording.Path:
		if d := PathData(g); d != "" {
			b.canvas.Path(d, s...)
		}
	}
}

// PathData renders a path as an SVG d attribute in scaled coordinates.
func PathData(p *recording.Path) string {
	var sb strings.Builder
	for _, seg := range p.Segments {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch seg.Verb {
		case recording.VerbMoveTo:
			fmt.Fprintf(&sb, "M %d %d", sc(seg.Pts[0].X), sc(seg.Pts[0].Y))
		case recording.VerbLineTo:
			fmt.Fprintf(&sb, "L %d %d", sc(seg.Pts[0].X), sc(seg.Pts[0].Y))
		case recording.VerbCubicTo:
			fmt.Fprintf(&sb, "C %d %d, %d %d, %d %d",
				sc(seg.Pts[0].X), sc(seg.Pts[0].Y),
				sc(seg.Pts[1].X), sc(seg.Pts[1].Y),
				sc(seg.Pts[2].X), sc(seg.Pts[2].Y))
		case recording.VerbArcTo:
			writeArc(&sb, seg)
		}
	}
	return sb.String()
}

// writeArc emits one or two elliptical-arc commands; a single SVG arc
// cannot describe a full turn.
func writeArc(sb *strings.Builder, seg recording.Segment) {
	parts := 1
	if math.Abs(seg.Sweep) >= 2*math.Pi-1e-9 {
		parts = 2
	}
	sweep := seg.Sweep / float64(parts)
	for i := 0; i < parts; i++ {
		part := seg
		part.Start = seg.Start + sweep*float64(i)
		part.Sweep = sweep
		end := part.ArcEnd()
		large, dir := 0, 0
		if math.Abs(sweep) > math.Pi {
			large = 1
		}
		if sweep > 0 {
			dir = 1
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		r := sc(seg.Radius)
		fmt.Fprintf(sb, "A %d %d 0 %d %d %d %d", r, r, large, dir, sc(end.X), sc(end.Y))
	}
}

func transform(p *recording.Primitive) string {
	var parts []string
	if rot := p.Rotation; rot != nil && rot.Angle != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%s %d %d)", num(rot.Angle), sc(rot.CX), sc(rot.CY)))
	}
	if p.Current.Spin != 0 {
		cx, cy := p.Center()
		parts = append(parts, fmt.Sprintf("rotate(%s %d %d)", num(p.Current.Spin), sc(cx), sc(cy)))
	}
	return strings.Join(parts, " ")
}

func offcolors(stops []recording.Stop) []svgo.Offcolor {
	out := make([]svgo.Offcolor, len(stops))
	for i, s := range stops {
		out[i] = svgo.Offcolor{Offset: s.Offset, Color: s.Color, Opacity: s.Opacity}
	}
	return out
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

// sc scales a user-space value to viewBox units.
func sc(v float64) int {
	return int(math.Round(v * Precision))
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func isWhite(hex string) bool {
	switch strings.ToLower(hex) {
	case "", "#ffffff", "#fff", "white":
		return true
	}
	return false
}
