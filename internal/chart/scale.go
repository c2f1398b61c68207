package chart

import "math"

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a scale mapping [d0,d1] onto [r0,r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects a domain value into the range. A degenerate domain maps to
// the middle of the range.
func (s Linear) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert projects a range value back into the domain.
func (s Linear) Invert(r float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	return s.D0 + (r-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// ExtentX returns the smallest and largest x of points.
func ExtentX(points []Point) (lo, hi float64) {
	if len(points) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}
	return lo, hi
}

// MaxY returns the largest y of points, or 0 for no points.
func MaxY(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	hi := math.Inf(-1)
	for _, p := range points {
		hi = math.Max(hi, p.Y)
	}
	return hi
}

// Scales returns the x scale over the x extent and the y scale over
// [0, max y], mapped onto a plot of the given size with y pointing down.
func Scales(points []Point, width, height float64) (x, y Linear) {
	lo, hi := ExtentX(points)
	x = NewLinear(lo, hi, 0, width)
	y = NewLinear(0, MaxY(points), height, 0)
	return x, y
}
