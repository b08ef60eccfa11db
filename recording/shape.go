package recording

import "math"

// Kind identifies a primitive's shape variant.
type Kind uint8

// Shape kinds.
const (
	KindCircle Kind = iota
	KindRectangle
	KindEllipse
	KindPolygon
	KindLine
	KindPath
)

var kindNames = [...]string{
	KindCircle:    "circle",
	KindRectangle: "rect",
	KindEllipse:   "ellipse",
	KindPolygon:   "polygon",
	KindLine:      "line",
	KindPath:      "path",
}

// String returns the element name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Point is a 2D point in user units.
type Point struct {
	X, Y float64
}

// Shape is the geometry of a primitive. The set of implementations is
// closed: Circle, Rectangle, Ellipse, Polygon, Line and *Path.
type Shape interface {
	Kind() Kind
	// Bounds returns the untransformed bounding box.
	Bounds() Rect
	isShape()
}

// Circle is centered at (CX, CY).
type Circle struct {
	CX, CY, R float64
}

// Rectangle has its top-left corner at (X, Y).
type Rectangle struct {
	X, Y, W, H float64
}

// Ellipse is centered at (CX, CY) with radii RX and RY.
type Ellipse struct {
	CX, CY, RX, RY float64
}

// Polygon is a closed outline through Points.
type Polygon struct {
	Points []Point
}

// Line is a single segment. Lines are never filled.
type Line struct {
	X1, Y1, X2, Y2 float64
}

func (Circle) Kind() Kind    { return KindCircle }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Ellipse) Kind() Kind   { return KindEllipse }
func (Polygon) Kind() Kind   { return KindPolygon }
func (Line) Kind() Kind      { return KindLine }
func (*Path) Kind() Kind     { return KindPath }

func (Circle) isShape()    {}
func (Rectangle) isShape() {}
func (Ellipse) isShape()   {}
func (Polygon) isShape()   {}
func (Line) isShape()      {}
func (*Path) isShape()     {}

// Bounds implements Shape.
func (c Circle) Bounds() Rect {
	return Rect{MinX: c.CX - c.R, MinY: c.CY - c.R, MaxX: c.CX + c.R, MaxY: c.CY + c.R}
}

// Bounds implements Shape.
func (r Rectangle) Bounds() Rect {
	return NewRect(r.X, r.Y, r.W, r.H)
}

// Bounds implements Shape.
func (e Ellipse) Bounds() Rect {
	return Rect{MinX: e.CX - e.RX, MinY: e.CY - e.RY, MaxX: e.CX + e.RX, MaxY: e.CY + e.RY}
}

// Bounds implements Shape.
func (p Polygon) Bounds() Rect {
	return boundsOf(p.Points)
}

// Bounds implements Shape.
func (l Line) Bounds() Rect {
	return boundsOf([]Point{{l.X1, l.Y1}, {l.X2, l.Y2}})
}

// RegularPolygon returns the n vertices of a regular polygon of radius r
// centered at (cx, cy), starting at angle start (radians).
func RegularPolygon(cx, cy, r float64, n int, start float64) Polygon {
	pts := make([]Point, n)
	for i := range pts {
		a := start + float64(i)/float64(n)*2*math.Pi
		pts[i] = Point{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return Polygon{Points: pts}
}

// Verb is a path construction verb.
type Verb uint8

// Path verbs.
const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbCubicTo
	VerbArcTo
)

// Segment is one path element. Pts holds one point for VerbMoveTo and
// VerbLineTo, and control1, control2, end for VerbCubicTo. A VerbArcTo
// segment draws a circular arc with center Pts[0] and radius Radius, from
// angle Start sweeping Sweep radians (positive is clockwise on screen).
type Segment struct {
	Verb   Verb
	Pts    [3]Point
	Radius float64
	Start  float64
	Sweep  float64
}

// Path is an open outline built from segments.
type Path struct {
	Segments []Segment
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{Segments: make([]Segment, 0, 16)}
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Verb: VerbMoveTo, Pts: [3]Point{{x, y}}})
	return p
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Verb: VerbLineTo, Pts: [3]Point{{x, y}}})
	return p
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{
		Verb: VerbCubicTo,
		Pts:  [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}},
	})
	return p
}

// Arc adds a circular arc. When the path is empty the arc starts a new
// sub-path at its start point.
func (p *Path) Arc(cx, cy, r, start, sweep float64) *Path {
	if len(p.Segments) == 0 {
		p.MoveTo(cx+math.Cos(start)*r, cy+math.Sin(start)*r)
	}
	p.Segments = append(p.Segments, Segment{
		Verb:   VerbArcTo,
		Pts:    [3]Point{{cx, cy}},
		Radius: r,
		Start:  start,
		Sweep:  sweep,
	})
	return p
}

// Polyline returns a path through pts.
func Polyline(pts []Point) *Path {
	p := &Path{Segments: make([]Segment, 0, len(pts))}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.Segments)
}

// ArcEnd returns the end point of a VerbArcTo segment.
func (s Segment) ArcEnd() Point {
	a := s.Start + s.Sweep
	return Point{s.Pts[0].X + math.Cos(a)*s.Radius, s.Pts[0].Y + math.Sin(a)*s.Radius}
}

// Bounds implements Shape. Control points and whole arc circles are
// included, so the result may be larger than the drawn outline.
func (p *Path) Bounds() Rect {
	pts := make([]Point, 0, len(p.Segments)*3)
	for _, s := range p.Segments {
		switch s.Verb {
		case VerbMoveTo, VerbLineTo:
			pts = append(pts, s.Pts[0])
		case VerbCubicTo:
			pts = append(pts, s.Pts[:]...)
		case VerbArcTo:
			c := s.Pts[0]
			pts = append(pts, Point{c.X - s.Radius, c.Y - s.Radius}, Point{c.X + s.Radius, c.Y + s.Radius})
		}
	}
	return boundsOf(pts)
}

// Compile-time interface checks.
var (
	_ Shape = Circle{}
	_ Shape = Rectangle{}
	_ Shape = Ellipse{}
	_ Shape = Polygon{}
	_ Shape = Line{}
	_ Shape = (*Path)(nil)
)
