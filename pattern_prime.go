package genvec

import (
	"math"

	"github.com/gogpu/genvec/recording"
)

// IsPrime reports whether n is prime, by trial division over 6k±1.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// FirstPrimes returns the first n primes in increasing order.
func FirstPrimes(n int) []int {
	if n <= 0 {
		return nil
	}
	primes := make([]int, 0, n)
	for k := 2; len(primes) < n; k++ {
		if IsPrime(k) {
			primes = append(primes, k)
		}
	}
	return primes
}

// Prime layouts.
const (
	primeGrid = iota
	primeSpiral
)

var primeLayoutNames = [...]string{primeGrid: "grid", primeSpiral: "spiral"}

// generatePrime draws the first primes either row by row on a square grid
// or outward along an Ulam spiral, the layout chosen with equal
// probability. Element size grows with log(p+1)/log(largest+1) and the
// shape follows p mod 5.
func generatePrime(c *Canvas) Report {
	o := c.Options()
	r := c.Rand()
	w, h := c.Width(), c.Height()

	n := max(10, int(math.Floor(100*float64(o.Complexity)*o.Density/100*float64(o.Repetition))))
	primes := FirstPrimes(n)
	largest := primes[len(primes)-1]
	logLargest := math.Log(float64(largest) + 1)
	ratio := func(p int) float64 { return math.Log(float64(p)+1) / logLargest }

	layout := r.IntRange(primeGrid, primeSpiral)
	if layout == primeGrid {
		side := int(math.Ceil(math.Sqrt(float64(len(primes)))))
		cw := w / float64(side)
		ch := h / float64(side)
		for i, p := range primes {
			x := float64(i%side)*cw + cw/2
			y := float64(i/side)*ch + ch/2
			size := math.Max(2, math.Min(cw, ch)*0.8*ratio(p)*o.Scale)
			drawPrime(c, x, y, size, p)
		}
	} else {
		x, y := w/2, h/2
		step := math.Min(w, h) / math.Sqrt(float64(len(primes))) * 0.5
		dx, dy := step, 0.0
		taken, limit, turns := 0, 1, 0
		for _, p := range primes {
			size := math.Max(1, step*0.8*ratio(p)*o.Scale)
			drawPrime(c, x, y, size, p)

			x += dx
			y += dy
			taken++
			if taken >= limit {
				taken = 0
				dx, dy = -dy, dx
				turns++
				if turns >= 2 {
					turns = 0
					limit++
				}
			}
		}
	}

	return Report{
		ElementCount: len(primes),
		Metrics: metrics(
			"primeCount", len(primes),
			"largestPrime", largest,
			"layout", primeLayoutNames[layout],
		),
	}
}

// drawPrime draws the shape of prime p: circle, square, triangle, four
// point star or ring, by p mod 5. Rings wider than 4 units get a hole
// painted with the background color.
func drawPrime(c *Canvas, x, y, size float64, p int) {
	o := c.Options()
	sw, op := o.StrokeWeight, o.Opacity
	fill := c.Fill()

	switch p % 5 {
	case 0:
		c.Shape(recording.Circle{CX: x, CY: y, R: size / 2}, fill, sw, op)
	case 1:
		c.Shape(recording.Rectangle{X: x - size/2, Y: y - size/2, W: size, H: size}, fill, sw, op)
	case 2:
		c.Shape(recording.Polygon{Points: []recording.Point{
			{X: x, Y: y - size/2},
			{X: x + size/2*0.866, Y: y + size/4},
			{X: x - size/2*0.866, Y: y + size/4},
		}}, fill, sw, op)
	case 3:
		c.Shape(recording.Polygon{Points: []recording.Point{
			{X: x, Y: y - size/2},
			{X: x + size/4, Y: y},
			{X: x, Y: y + size/2},
			{X: x - size/4, Y: y},
		}}, fill, sw, op)
	default:
		c.Add(recording.Circle{CX: x, CY: y, R: size / 2}, recording.Style{
			Fill:        recording.NoPaint(),
			Stroke:      fill,
			StrokeWidth: sw * 1.5,
			Opacity:     op,
		})
		if size > 4 {
			c.Add(recording.Circle{CX: x, CY: y, R: size / 4}, recording.Style{
				Fill:    recording.Solid(o.Background),
				Stroke:  recording.NoPaint(),
				Opacity: 1,
			})
		}
	}
}
