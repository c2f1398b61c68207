package chart

import (
	"math"
	"sort"
)

// Monotone is a cubic Hermite interpolant whose tangents follow Steffen's
// method, so the curve never overshoots between neighbouring samples.
// Points must be sorted by x with distinct x values.
type Monotone struct {
	xs, ys, ms []float64
}

// NewMonotone builds the interpolant through points.
func NewMonotone(points []Point) *Monotone {
	n := len(points)
	m := &Monotone{
		xs: make([]float64, n),
		ys: make([]float64, n),
		ms: make([]float64, n),
	}
	for i, p := range points {
		m.xs[i], m.ys[i] = p.X, p.Y
	}
	if n < 2 {
		return m
	}

	secant := func(i int) float64 {
		return (m.ys[i+1] - m.ys[i]) / (m.xs[i+1] - m.xs[i])
	}
	if n == 2 {
		s := secant(0)
		m.ms[0], m.ms[1] = s, s
		return m
	}

	for i := 1; i < n-1; i++ {
		h0 := m.xs[i] - m.xs[i-1]
		h1 := m.xs[i+1] - m.xs[i]
		s0, s1 := secant(i-1), secant(i)
		p := (s0*h1 + s1*h0) / (h0 + h1)
		t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
		if math.IsNaN(t) {
			t = 0
		}
		m.ms[i] = t
	}
	m.ms[0] = (3*secant(0) - m.ms[1]) / 2
	m.ms[n-1] = (3*secant(n-2) - m.ms[n-2]) / 2
	return m
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// At evaluates the curve at x. Outside the sampled domain the nearest end
// value is returned.
func (m *Monotone) At(x float64) float64 {
	n := len(m.xs)
	switch {
	case n == 0:
		return 0
	case n == 1 || x <= m.xs[0]:
		return m.ys[0]
	case x >= m.xs[n-1]:
		return m.ys[n-1]
	}

	i := sort.SearchFloat64s(m.xs, x)
	if m.xs[i] == x {
		return m.ys[i]
	}
	i--
	h := m.xs[i+1] - m.xs[i]
	t := (x - m.xs[i]) / h
	t2, t3 := t*t, t*t*t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*m.ys[i] + h10*h*m.ms[i] + h01*m.ys[i+1] + h11*h*m.ms[i+1]
}

// Sample evaluates the curve at n evenly spaced x positions across the
// domain, endpoints included.
func (m *Monotone) Sample(n int) (xs, ys []float64) {
	if len(m.xs) == 0 || n < 2 {
		return nil, nil
	}
	lo, hi := m.xs[0], m.xs[len(m.xs)-1]
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		xs[i] = x
		ys[i] = m.At(x)
	}
	return xs, ys
}
