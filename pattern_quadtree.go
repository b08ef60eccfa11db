package genvec

import (
	"math"

	"github.com/gogpu/genvec/recording"
)

// Quadtree leaf contents.
const (
	leafRect = iota
	leafCircle
	leafEllipse
	leafPolygon
	leafArc
)

type quad struct {
	x, y, w, h float64
	depth      int
}

type quadtree struct {
	c        *Canvas
	maxDepth int
	deepest  int
}

// SubdivideProbability returns the chance that a quadtree node at depth is
// split, clamped to [0, 1].
func SubdivideProbability(complexity int, density float64, depth, maxDepth int) float64 {
	p := 0.5 + float64(complexity)/10*0.4 + density/100*0.2 - float64(depth)/float64(maxDepth)*0.3
	return clampFloat(p, 0, 1)
}

// generateQuadtree subdivides the viewport recursively. Nodes split with
// SubdivideProbability at a point jittered by up to 10% of the half
// extent; leaves draw one shape. Dividing lines are drawn when
// complexity > 5 and count towards the governor.
func generateQuadtree(c *Canvas) Report {
	o := c.Options()
	gov := c.Governor()
	start := gov.Count()

	q := &quadtree{c: c, maxDepth: o.MaxRecursionDepth}
	q.node(quad{w: c.Width(), h: c.Height()})

	return Report{
		ElementCount: gov.Count() - start,
		Metrics: metrics(
			"maxDepthReached", q.deepest,
			"complexity", o.Complexity,
			"ceilingHit", gov.CeilingHit(),
		),
	}
}

func (q *quadtree) node(n quad) {
	if n.depth >= q.maxDepth || q.c.Governor().Exhausted() || n.w < 2 || n.h < 2 {
		return
	}
	q.c.Governor().Visit()
	q.deepest = max(q.deepest, n.depth+1)

	o := q.c.Options()
	r := q.c.Rand()

	if r.Float() >= SubdivideProbability(o.Complexity, o.Density, n.depth, q.maxDepth) {
		q.leaf(n)
		return
	}

	hw, hh := n.w/2, n.h/2
	midX := n.x + hw + r.Range(-hw*0.1, hw*0.1)
	midY := n.y + hh + r.Range(-hh*0.1, hh*0.1)
	d := n.depth + 1
	q.node(quad{x: n.x, y: n.y, w: midX - n.x, h: midY - n.y, depth: d})
	q.node(quad{x: midX, y: n.y, w: n.x + n.w - midX, h: midY - n.y, depth: d})
	q.node(quad{x: n.x, y: midY, w: midX - n.x, h: n.y + n.h - midY, depth: d})
	q.node(quad{x: midX, y: midY, w: n.x + n.w - midX, h: n.y + n.h - midY, depth: d})

	if o.Complexity > 5 {
		depth := float64(n.depth)
		op := math.Max(0.05, 0.3-depth*0.05)
		sw := math.Max(0.1, o.StrokeWeight*(0.8-depth*0.1))
		q.c.Stroked(recording.Line{X1: n.x, Y1: midY, X2: n.x + n.w, Y2: midY}, o.StrokeColor, sw, op)
		q.c.Stroked(recording.Line{X1: midX, Y1: n.y, X2: midX, Y2: n.y + n.h}, o.StrokeColor, sw, op)
		q.c.Governor().Add(2)
	}
}

func (q *quadtree) leaf(n quad) {
	o := q.c.Options()
	r := q.c.Rand()
	md := float64(q.maxDepth)
	depth := float64(n.depth)

	fill := q.c.Fill()
	sw := math.Max(0.1, o.StrokeWeight*(1-depth/md))
	op := math.Max(0.1, o.Opacity*(1-depth/(md*1.5)))
	cx := n.x + n.w/2
	cy := n.y + n.h/2
	radius := math.Min(n.w, n.h) / 2 * 0.8 * o.Scale

	switch r.IntRange(leafRect, leafArc) {
	case leafRect:
		rect := recording.Rectangle{X: n.x + n.w*0.1, Y: n.y + n.h*0.1, W: n.w * 0.8, H: n.h * 0.8}
		q.c.Shape(rect, fill, sw, op)
	case leafCircle:
		q.c.Shape(recording.Circle{CX: cx, CY: cy, R: radius}, fill, sw, op)
	case leafEllipse:
		q.c.Shape(recording.Ellipse{CX: cx, CY: cy, RX: radius, RY: radius * r.Range(0.5, 1)}, fill, sw, op)
	case leafPolygon:
		q.c.Shape(recording.RegularPolygon(cx, cy, radius, r.IntRange(3, 6), 0), fill, sw, op)
	default:
		start := r.Range(0, tau)
		sweep := r.Range(math.Pi/2, math.Pi*1.5)
		arc := recording.NewPath().Arc(cx, cy, radius, start, sweep)
		q.c.Stroked(arc, q.c.Color(), sw*1.5, op)
	}
}
