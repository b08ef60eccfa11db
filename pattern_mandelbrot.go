package genvec

import (
	"math"

	"github.com/gogpu/genvec/recording"
)

// Complex-plane window sampled by the Mandelbrot generator.
const (
	mandelXMin = -2.1
	mandelXMax = 0.6
	mandelYMin = -1.2
	mandelYMax = 1.2
)

// EscapeTime iterates z <- z*z + c from z = 0 and returns the number of
// iterations after which |z|^2 exceeds 4, or maxIter if it never does.
func EscapeTime(cr, ci float64, maxIter int) int {
	var x, y, x2, y2 float64
	iter := 0
	for x2+y2 <= 4 && iter < maxIter {
		y = 2*x*y + ci
		x = x2 - y2 + cr
		x2 = x * x
		y2 = y * y
		iter++
	}
	return iter
}

// MandelbrotResolution returns the number of cells per side.
func MandelbrotResolution(complexity int) int {
	return min(100, max(10, complexity*7))
}

// MandelbrotMaxIter returns the iteration cap.
func MandelbrotMaxIter(complexity int) int {
	return complexity*20 + 15
}

// generateMandelbrot samples the escape-time field on a grid over the
// window [-2.1, 0.6] x [-1.2, 1.2]. Cells are kept with probability
// density/100 and only points that escape are drawn: the palette index
// follows the normalized iteration count and slower escapes draw larger
// shapes.
func generateMandelbrot(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	pal := c.Palette()

	res := MandelbrotResolution(o.Complexity)
	maxIter := MandelbrotMaxIter(o.Complexity)
	cw := c.Width() / float64(res)
	ch := c.Height() / float64(res)
	skip := 1 - o.Density/100
	sw, op := o.StrokeWeight*0.5, o.Opacity
	count := 0

	for row := range res {
		for col := range res {
			if r.Float() < skip {
				continue
			}
			x0 := mandelXMin + (mandelXMax-mandelXMin)*float64(col)/float64(res)
			y0 := mandelYMin + (mandelYMax-mandelYMin)*float64(row)/float64(res)
			iter := EscapeTime(x0, y0, maxIter)
			if iter <= 0 || iter >= maxIter {
				continue
			}

			norm := float64(iter) / float64(maxIter)
			fill := recording.NoPaint()
			if o.FillMode != FillNone {
				fill = recording.Solid(pal.At(int(math.Floor(norm * float64(len(pal)-1)))))
			}
			size := math.Max(1, math.Min(cw, ch)*0.9*(1-norm)*o.Scale)
			px := float64(col)*cw + cw/2
			py := float64(row)*ch + ch/2

			switch iter % 4 {
			case 0:
				c.Shape(recording.Circle{CX: px, CY: py, R: size / 2}, fill, sw, op)
			case 1:
				c.Shape(recording.Rectangle{X: px - size/2, Y: py - size/2, W: size, H: size}, fill, sw, op)
			case 2:
				c.Rotated(recording.Ellipse{CX: px, CY: py, RX: size / 2, RY: size / 4}, fill, sw, op, float64(iter*5), px, py)
			default:
				c.Shape(recording.Polygon{Points: []recording.Point{
					{X: px, Y: py - size/2},
					{X: px + size/2, Y: py},
					{X: px, Y: py + size/2},
					{X: px - size/2, Y: py},
				}}, fill, sw, op)
			}
			count++
		}
	}

	return Report{
		ElementCount: count,
		Metrics: metrics(
			"resolution", res,
			"maxIterations", maxIter,
		),
	}
}
