package chart

import (
	"math"
	"strings"
)

// MinWidth and MinHeight are the smallest terminal frame Render draws a plot
// into. Smaller frames only carry the title.
const (
	MinWidth  = 20
	MinHeight = 8
)

// Marker is a data point's position inside a rendered frame.
type Marker struct {
	Point Point
	Col   int
	Row   int
}

// Frame is a chart rendered for the terminal.
type Frame struct {
	Lines   []string
	Markers []Marker
}

// MarkerAt returns the marker drawn at or beside (col, row).
func (f Frame) MarkerAt(col, row int) (Marker, bool) {
	for _, m := range f.Markers {
		if m.Row == row && abs(m.Col-col) <= 1 {
			return m, true
		}
	}
	return Marker{}, false
}

// Tooltip is the hover text for a point.
func Tooltip(p Point) string {
	return "x: " + FormatTick(p.X) + " y: " + FormatTick(p.Y)
}

// Render draws spec into a width x height character frame:
//
//	row 0            title
//	row 1            y axis label
//	rows 2..h-4      plot with y tick labels in the gutter
//	row h-3          x axis line
//	row h-2          x tick labels
//	row h-1          x axis label
func Render(spec Spec, width, height int) Frame {
	if width <= 0 || height <= 0 {
		return Frame{}
	}
	c := NewCanvas(width, height)
	c.Text(center(spec.Title, width), 0, spec.Title)
	if width < MinWidth || height < MinHeight || len(spec.Points) == 0 {
		return Frame{Lines: c.Lines()}
	}

	maxY := MaxY(spec.Points)
	top := 2
	axisRow := height - 3
	plotRows := axisRow - top

	yTicks := TicksWithin(NiceTicks(0, maxY, clampInt(plotRows/2, 2, 6)), 0, maxY)
	gutter := 1
	for _, t := range yTicks {
		if w := len(t.Label) + 1; w > gutter {
			gutter = w
		}
	}
	axisCol := gutter
	left := axisCol + 1
	plotCols := width - left - 1
	if plotCols < 4 {
		return Frame{Lines: c.Lines()}
	}

	plot := NewCanvas(plotCols, plotRows)
	pw, ph := plot.PixelSize()
	xs, ys := Scales(spec.Points, float64(pw-1), float64(ph-1))
	toPx := func(v float64) int { return int(math.Round(xs.Map(v))) }
	toPy := func(v float64) int { return int(math.Round(ys.Map(v))) }

	// Dotted horizontal grid at each y tick.
	for _, t := range yTicks {
		if t.Value == 0 {
			continue
		}
		py := toPy(t.Value)
		for px := 0; px < pw; px += 3 {
			plot.Set(px, py)
		}
	}

	mono := NewMonotone(spec.Points)
	prevX, prevY := -1, -1
	for px := 0; px < pw; px++ {
		py := toPy(mono.At(xs.Invert(float64(px))))
		if prevX >= 0 {
			plot.Line(prevX, prevY, px, py)
		} else {
			plot.Set(px, py)
		}
		prevX, prevY = px, py
	}

	markers := make([]Marker, 0, len(spec.Points))
	for _, p := range spec.Points {
		col, row := toPx(p.X)/2, toPy(p.Y)/4
		plot.Put(col, row, '●')
		markers = append(markers, Marker{Point: p, Col: left + col, Row: top + row})
	}

	for row, line := range plot.Lines() {
		c.Text(left, top+row, line)
		c.Put(axisCol, top+row, '│')
	}

	for _, t := range yTicks {
		row := top + toPy(t.Value)/4
		c.Text(axisCol-len(t.Label), row, t.Label)
		c.Put(axisCol, row, '┤')
	}
	c.Text(0, 1, spec.YLabel)

	c.Put(axisCol, axisRow, '└')
	c.Text(left, axisRow, strings.Repeat("─", plotCols))
	lo, hi := ExtentX(spec.Points)
	for _, t := range TicksWithin(NiceTicks(lo, hi, clampInt(plotCols/8, 2, 10)), lo, hi) {
		col := left + toPx(t.Value)/2
		c.Put(col, axisRow, '┬')
		start := col - len(t.Label)/2
		if start+len(t.Label) > width {
			start = width - len(t.Label)
		}
		c.Text(start, axisRow+1, t.Label)
	}
	c.Text(center(spec.XLabel, width), height-1, spec.XLabel)

	return Frame{Lines: c.Lines(), Markers: markers}
}

func center(s string, width int) int {
	n := len([]rune(s))
	if n >= width {
		return 0
	}
	return (width - n) / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
