package genvec

import (
	"math"

	"github.com/gogpu/genvec/recording"
)

const tau = 2 * math.Pi

// ScatterCount returns the number of shapes the scatter generator emits.
func ScatterCount(complexity int, density float64, repetition int) int {
	return int(math.Floor(float64(complexity) * density / 100 * 20 * float64(repetition)))
}

// generateScatter places circles (30%), rectangles rotated about a random
// pivot (30%) and jittered polygons (40%) uniformly over the viewport.
func generateScatter(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	w, h := c.Width(), c.Height()
	cs := float64(o.Complexity) * o.Scale
	sw, op := o.StrokeWeight, o.Opacity

	n := ScatterCount(o.Complexity, o.Density, o.Repetition)
	for range n {
		kind := r.Float()
		fill := c.Fill()
		switch {
		case kind < 0.3:
			circle := recording.Circle{CX: r.Range(0, w), CY: r.Range(0, h)}
			circle.R = r.Range(5, 30*cs)
			c.Shape(circle, fill, sw, op)
		case kind < 0.6:
			rw := r.Range(10, 50*cs)
			rh := r.Range(10, 50*cs)
			rect := recording.Rectangle{X: r.Range(0, w-rw), W: rw, H: rh}
			rect.Y = r.Range(0, h-rh)
			angle := r.Range(-30, 30)
			px := r.Range(0, w)
			py := r.Range(0, h)
			c.Rotated(rect, fill, sw, op, angle, px, py)
		default:
			c.Shape(jitteredPolygon(c, r.IntRange(3, 7), 40*cs), fill, sw, op)
		}
	}

	return Report{
		ElementCount: n,
		Metrics: metrics(
			"complexity", o.Complexity,
			"uniqueColors", len(c.Palette()),
		),
	}
}

// jitteredPolygon draws an n-gon around a random center with each vertex
// angle jittered by up to 0.1 rad and each radius by up to 20%.
func jitteredPolygon(c *Canvas, n int, maxRadius float64) recording.Polygon {
	r := c.Rand()
	cx := r.Range(0, c.Width())
	cy := r.Range(0, c.Height())
	radius := r.Range(10, maxRadius)
	pts := make([]recording.Point, n)
	for i := range pts {
		a := float64(i)/float64(n)*tau + r.Range(-0.1, 0.1)
		d := radius * r.Range(0.8, 1.2)
		pts[i] = recording.Point{X: cx + math.Cos(a)*d, Y: cy + math.Sin(a)*d}
	}
	return recording.Polygon{Points: pts}
}
