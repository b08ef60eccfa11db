package genvec

import (
	"math"

	"github.com/gogpu/genvec/recording"
	"github.com/gogpu/genvec/rng"
)

// Wave functions of the trig generator.
const (
	waveSin = iota
	waveCos
	waveTan
)

// generateTrig draws complexity*repetition waves across the viewport, each
// a polyline sampling sin, cos or tan with random amplitude, frequency,
// phase and vertical offset. Tangent values are clamped to [-5, 5] and all
// samples to the viewport height.
func generateTrig(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	w, h := c.Width(), c.Height()

	waves := o.Complexity * o.Repetition
	samples := int(math.Floor(o.Density)) + 10
	count := 0

	for range waves {
		amp := r.Range(h*0.05, h*0.4) * o.Scale
		freq := r.Range(0.5, float64(o.Complexity)/2)
		phase := r.Range(0, tau)
		yOff := r.Range(amp, h-amp)
		fn := r.Intn(3)

		pts := make([]recording.Point, samples+1)
		for j := range pts {
			t := float64(j) / float64(samples)
			y := yOff
			switch fn {
			case waveSin:
				y += math.Sin(t*tau*freq+phase) * amp
			case waveCos:
				y += math.Cos(t*tau*freq+phase) * amp
			default:
				v := clampFloat(math.Tan(t*math.Pi*freq+phase), -5, 5)
				y += v * amp * 0.2
			}
			pts[j] = recording.Point{X: t * w, Y: clampFloat(y, 0, h)}
		}
		strokeCurve(c, recording.Polyline(pts), 0.5, 1.5, 0.7)
		count++
	}

	return Report{
		ElementCount: count,
		Metrics: metrics(
			"waves", waves,
			"pointsPerWave", samples,
			"funcType", "mixed",
		),
	}
}

// generateBezier draws cubic Bezier curves with random endpoints and
// control points. A captured X or Y replaces the start coordinate and a
// captured vector replaces the end point.
func generateBezier(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	w, h := c.Width(), c.Height()

	n := int(math.Floor(float64(o.Complexity) * o.Density / 100 * 5 * float64(o.Repetition)))
	for range n {
		x1, y1 := r.Range(0, w), r.Range(0, h)
		x2, y2 := r.Range(0, w), r.Range(0, h)
		c1x, c1y := r.Range(0, w), r.Range(0, h)
		c2x, c2y := r.Range(0, w), r.Range(0, h)

		if o.CapturedX != nil {
			x1 = *o.CapturedX
		}
		if o.CapturedY != nil {
			y1 = *o.CapturedY
		}
		if o.CapturedV != nil {
			x2, y2 = o.CapturedV.X, o.CapturedV.Y
		}

		path := recording.NewPath().MoveTo(x1, y1).CubicTo(c1x, c1y, c2x, c2y, x2, y2)
		strokeCurve(c, path, 0.5, 2, 0.5)
	}

	return Report{
		ElementCount: n,
		Metrics: metrics(
			"curves", n,
			"type", "Cubic Bezier",
			"captured", o.CapturedX != nil || o.CapturedY != nil || o.CapturedV != nil,
		),
	}
}

// generateLissajous draws complexity*repetition/2+1 Lissajous figures
// x = sin(a*t + delta), y = sin(b*t) with integer frequencies in
// [1, complexity/2+1] and delta = pi/k for k in {1, 2, 3, 4, 6, 8}.
func generateLissajous(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	cx, cy := c.Width()/2, c.Height()/2
	rx := c.Width() * 0.4 * o.Scale
	ry := c.Height() * 0.4 * o.Scale

	n := int(math.Floor(float64(o.Complexity)*0.5*float64(o.Repetition))) + 1
	steps := int(math.Floor(o.Density)) + 50
	hi := float64(o.Complexity)/2 + 1

	for range n {
		a := float64(floorRange(r, 1, hi))
		b := float64(floorRange(r, 1, hi))
		delta := math.Pi / rng.Pick(r, []float64{1, 2, 3, 4, 6, 8})

		pts := make([]recording.Point, steps+1)
		for j := range pts {
			t := float64(j) / float64(steps) * tau * float64(o.Repetition)
			pts[j] = recording.Point{
				X: cx + rx*math.Sin(a*t+delta),
				Y: cy + ry*math.Sin(b*t),
			}
		}
		strokeCurve(c, recording.Polyline(pts), 0.8, 1.2, 0.7)
	}

	return Report{
		ElementCount: n,
		Metrics: metrics(
			"curves", n,
			"stepsPerCurve", steps,
		),
	}
}

// strokeCurve records an unfilled path stroked with a palette color. The
// stroke width is the option weight times a draw in [swLo, swHi), floored
// at 0.5; the opacity is the option opacity times a draw in [opLo, 1).
func strokeCurve(c *Canvas, path *recording.Path, swLo, swHi, opLo float64) {
	o := c.Options()
	r := c.Rand()
	color := c.Color()
	sw := math.Max(0.5, o.StrokeWeight*r.Range(swLo, swHi))
	op := o.Opacity * r.Range(opLo, 1)
	c.Stroked(path, color, sw, op)
}

// floorRange returns floor of a uniform draw in [lo, hi+1), the integer
// range helper for non-integer bounds.
func floorRange(r *rng.Rand, lo, hi float64) int {
	return int(math.Floor(r.Range(lo, hi+1)))
}
