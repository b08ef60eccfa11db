package genvec

import (
	"math"

	"github.com/gogpu/genvec/recording"
)

// fractalNode is one shape of the fractal: a circle of diameter size or a
// square of side size, centered at (x, y).
type fractalNode struct {
	circle bool
	x, y   float64
	size   float64
	depth  int
}

type fractal struct {
	c        *Canvas
	maxDepth int
	visits   int
	deepest  int
}

// generateFractal grows a tree of circles and squares from one shape near
// the viewport center. Each node spawns 2 to complexity/2 children placed
// around it at about half its size; stroke width and opacity decay with
// depth. Recursion stops at the depth limit, when children would be
// smaller than one unit, or when the governor refuses a visit.
func generateFractal(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	w, h := c.Width(), c.Height()

	root := fractalNode{size: math.Min(w, h) * 0.4 * o.Scale}
	root.x = w/2 + r.Range(-w*0.1, w*0.1)
	root.y = h/2 + r.Range(-h*0.1, h*0.1)
	root.circle = r.Float() < 0.5

	f := &fractal{c: c, maxDepth: o.MaxRecursionDepth}
	f.draw(root)

	return Report{
		ElementCount: f.visits,
		Metrics: metrics(
			"recursionDepthReached", f.deepest,
			"complexity", o.Complexity,
			"ceilingHit", c.Governor().CeilingHit(),
		),
	}
}

func (f *fractal) draw(n fractalNode) {
	if n.depth >= f.maxDepth || !f.c.Governor().Visit() {
		return
	}
	f.visits++
	f.deepest = max(f.deepest, n.depth+1)

	o := f.c.Options()
	r := f.c.Rand()
	md := float64(f.maxDepth)
	depth := float64(n.depth)

	fill := f.c.Fill()
	sw := math.Max(0.1, o.StrokeWeight*(1-depth/(md*1.5)))
	op := math.Max(0.1, o.Opacity*(1-depth/(md*2)))

	if n.circle {
		f.c.Shape(recording.Circle{CX: n.x, CY: n.y, R: math.Max(1, n.size/2)}, fill, sw, op)
	} else {
		side := math.Max(1, n.size)
		rect := recording.Rectangle{X: n.x - n.size/2, Y: n.y - n.size/2, W: side, H: side}
		f.c.Rotated(rect, fill, sw, op, r.Range(-10, 10), n.x, n.y)
	}

	children := r.IntRange(2, max(2, o.Complexity/2))
	scale := math.Max(0.1, (0.6-depth*0.05)*(o.Density/100+0.5))
	childSize := n.size * scale
	if childSize < 1 {
		return
	}

	for i := range children {
		angle := float64(i)/float64(children)*tau + r.Range(-0.2, 0.2)
		dist := n.size * 0.5 * r.Range(0.8, 1.2)
		child := fractalNode{
			circle: n.circle,
			x:      n.x + math.Cos(angle)*dist,
			y:      n.y + math.Sin(angle)*dist,
			size:   childSize,
			depth:  n.depth + 1,
		}
		if r.Float() >= 0.6 {
			child.circle = !n.circle
		}
		f.draw(child)
	}
}
