package genvec

import (
	"fmt"
	"math"

	"github.com/gogpu/genvec/recording"
)

// GridCellsPerSide returns the number of grid cells per side.
func GridCellsPerSide(complexity, repetition int) int {
	return max(2, int(math.Floor(float64(complexity)*1.5+float64(repetition))))
}

// Grid cell contents.
const (
	cellCircle = iota
	cellRect
	cellLine
	cellPolygon
	cellEllipse
	cellNested
)

// generateGrid divides the viewport into a square grid. Each cell is kept
// with probability density/100 and draws one shape chosen uniformly. Faint
// grid lines are added when complexity > 4 and density > 30.
func generateGrid(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	w, h := c.Width(), c.Height()
	sw, op := o.StrokeWeight, o.Opacity

	cells := GridCellsPerSide(o.Complexity, o.Repetition)
	cw := w / float64(cells)
	ch := h / float64(cells)
	skip := 1 - o.Density/100
	count := 0

	for row := range cells {
		for col := range cells {
			if r.Float() < skip {
				continue
			}
			cx := float64(col)*cw + cw/2
			cy := float64(row)*ch + ch/2

			content := r.IntRange(cellCircle, cellNested)
			fill := c.Fill()
			es := math.Min(cw, ch) * 0.4 * o.Scale * r.Range(0.7, 1.1)

			switch content {
			case cellCircle:
				c.Shape(recording.Circle{CX: cx, CY: cy, R: es}, fill, sw, op)
			case cellRect:
				rw := es * 2 * r.Range(0.8, 1.2)
				rh := es * 2 * r.Range(0.8, 1.2)
				rect := recording.Rectangle{X: cx - rw/2, Y: cy - rh/2, W: rw, H: rh}
				c.Rotated(rect, fill, sw, op, r.Range(-20, 20), cx, cy)
			case cellLine:
				a := r.Range(0, tau)
				half := es
				line := recording.Line{
					X1: cx - math.Cos(a)*half, Y1: cy - math.Sin(a)*half,
					X2: cx + math.Cos(a)*half, Y2: cy + math.Sin(a)*half,
				}
				color := c.Color()
				c.Stroked(line, color, sw*r.Range(1, 3), op)
			case cellPolygon:
				c.Shape(recording.RegularPolygon(cx, cy, es, r.IntRange(3, 7), 0), fill, sw, op)
			case cellEllipse:
				rx := es * r.Range(0.7, 1.3)
				ry := es * r.Range(0.7, 1.3)
				c.Shape(recording.Ellipse{CX: cx, CY: cy, RX: rx, RY: ry}, fill, sw, op)
			default:
				outer := es * 1.2
				c.Add(recording.Circle{CX: cx, CY: cy, R: outer}, recording.Style{
					Fill:        recording.NoPaint(),
					Stroke:      c.Stroke(),
					StrokeWidth: sw * 0.5,
					Opacity:     op * 0.5,
				})
				inner := outer * 0.6
				c.Add(recording.Rectangle{X: cx - inner/2, Y: cy - inner/2, W: inner, H: inner}, recording.Style{
					Fill:    fill,
					Stroke:  recording.NoPaint(),
					Opacity: op,
				})
				count++
			}
			count++
		}
	}

	if o.Complexity > 4 && o.Density > 30 {
		lineSW := sw * 0.5
		lineOp := op * 0.2
		for row := 0; row <= cells; row++ {
			y := float64(row) * ch
			c.Stroked(recording.Line{X1: 0, Y1: y, X2: w, Y2: y}, o.StrokeColor, lineSW, lineOp)
			count++
		}
		for col := 0; col <= cells; col++ {
			x := float64(col) * cw
			c.Stroked(recording.Line{X1: x, Y1: 0, X2: x, Y2: h}, o.StrokeColor, lineSW, lineOp)
			count++
		}
	}

	return Report{
		ElementCount: count,
		Metrics: metrics(
			"gridSize", fmt.Sprintf("%dx%d", cells, cells),
			"cellCount", cells*cells,
		),
	}
}
