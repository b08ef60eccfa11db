package genvec

import (
	"math"

	"github.com/gogpu/genvec/recording"
)

// Golden ratio constants.
var (
	Phi         = (1 + math.Sqrt(5)) / 2
	GoldenAngle = tau * (1 - 1/Phi)
)

// Spiral element shapes.
const (
	spiralCircle = iota
	spiralSquare
	spiralTriangle
	spiralEllipse
	spiralRay
	spiralShapes
)

// generateFibonacci places shapes at successive golden angles with radius
// growing as the square root of the index, so the points fill a disc
// evenly. Element size shrinks linearly towards the rim. A connecting
// spiral is traced through a subsample when complexity > 5 and
// density > 50.
func generateFibonacci(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	cx, cy := c.Width()/2, c.Height()/2
	radius := math.Min(c.Width(), c.Height()) * 0.45 * o.Scale
	n := max(10, int(math.Floor(50*float64(o.Complexity)*o.Density/100*float64(o.Repetition))))
	sw, op := o.StrokeWeight, o.Opacity
	count := 0

	point := func(i int) (float64, float64, float64) {
		theta := float64(i) * GoldenAngle
		d := radius * math.Sqrt(float64(i)/float64(n))
		return cx + d*math.Cos(theta), cy + d*math.Sin(theta), theta
	}

	for i := range n {
		x, y, theta := point(i)
		size := math.Max(1, radius*0.1*(1-float64(i)/float64(n))*(float64(o.Complexity)/5))
		deg := theta * 180 / math.Pi

		fill := c.Fill()
		switch (i % r.IntRange(3, 6)) % spiralShapes {
		case spiralCircle:
			c.Shape(recording.Circle{CX: x, CY: y, R: size}, fill, sw, op)
		case spiralSquare:
			rect := recording.Rectangle{X: x - size/2, Y: y - size/2, W: size, H: size}
			c.Rotated(rect, fill, sw, op, deg+r.Range(-10, 10), x, y)
		case spiralTriangle:
			pts := make([]recording.Point, 3)
			for j := range pts {
				a := theta + float64(j)*tau/3
				pts[j] = recording.Point{X: x + size*math.Cos(a), Y: y + size*math.Sin(a)}
			}
			c.Shape(recording.Polygon{Points: pts}, fill, sw, op)
		case spiralEllipse:
			rx := size * r.Range(0.8, 1.2)
			ry := size * r.Range(0.5, 1)
			c.Rotated(recording.Ellipse{CX: x, CY: y, RX: rx, RY: ry}, fill, sw, op, deg+r.Range(-10, 10), x, y)
		case spiralRay:
			dx, dy := math.Cos(theta)*size, math.Sin(theta)*size
			color := c.Color()
			c.Stroked(recording.Line{X1: x - dx, Y1: y - dy, X2: x + dx, Y2: y + dy}, color, sw*r.Range(0.5, 1.5), op)
		}
		count++
	}

	if o.Complexity > 5 && o.Density > 50 {
		step := max(1, n/(50*o.Repetition))
		pts := make([]recording.Point, 0, n/step+1)
		for i := 0; i < n; i += step {
			x, y, _ := point(i)
			pts = append(pts, recording.Point{X: x, Y: y})
		}
		if len(pts) > 1 {
			c.Stroked(recording.Polyline(pts), o.StrokeColor, sw*0.5, 0.4)
			count++
		}
	}

	return Report{
		ElementCount: count,
		Metrics: metrics(
			"goldenRatio", Phi,
			"goldenAngleRad", GoldenAngle,
			"numElementsGenerated", n,
		),
	}
}
