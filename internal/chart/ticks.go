package chart

import (
	"math"
	"strconv"
)

// Tick is one labelled axis position.
type Tick struct {
	Value float64
	Label string
}

// NiceTicks generates roughly n tick marks covering [min, max] using steps of
// 1, 2, 2.5, 5 or 10 times a power of ten.
func NiceTicks(min, max float64, n int) []Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var ticks []Tick
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, Tick{Value: v, Label: FormatTick(v)})
	}
	return ticks
}

// TicksWithin keeps the ticks inside [min, max].
func TicksWithin(ticks []Tick, min, max float64) []Tick {
	const eps = 1e-9
	out := ticks[:0:0]
	for _, t := range ticks {
		if t.Value >= min-eps && t.Value <= max+eps {
			out = append(out, t)
		}
	}
	return out
}

// FormatTick renders a tick value without trailing zeros.
func FormatTick(v float64) string {
	if math.Abs(v) < 1e-9 {
		return "0"
	}
	// Round away float noise from repeated step addition.
	r := math.Round(v*1e6) / 1e6
	return strconv.FormatFloat(r, 'f', -1, 64)
}
