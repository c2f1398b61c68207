package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// curveSamples is the number of points used to approximate the smooth curve.
const curveSamples = 200

var (
	lineColor  = drawing.ColorFromHex("4682b4")
	pointColor = drawing.ColorFromHex("ff7f0e")
	gridColor  = drawing.ColorFromHex("dddddd")
)

// WritePNG renders spec as a PNG image.
func WritePNG(w io.Writer, spec Spec) error {
	if len(spec.Points) < 2 {
		return fmt.Errorf("chart needs at least two points, got %d", len(spec.Points))
	}
	xs, ys := NewMonotone(spec.Points).Sample(curveSamples)

	px := make([]float64, len(spec.Points))
	py := make([]float64, len(spec.Points))
	for i, p := range spec.Points {
		px[i], py[i] = p.X, p.Y
	}

	maxY := MaxY(spec.Points)
	lo, hi := ExtentX(spec.Points)

	ch := gochart.Chart{
		Title:  spec.Title,
		Width:  spec.Width,
		Height: spec.Height,
		Background: gochart.Style{Padding: gochart.Box{
			Top:    spec.Margin.Top,
			Left:   spec.Margin.Left,
			Right:  spec.Margin.Right,
			Bottom: spec.Margin.Bottom,
		}},
		XAxis: gochart.XAxis{
			Name:  spec.XLabel,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			Ticks: axisTicks(TicksWithin(NiceTicks(lo, hi, 6), lo, hi)),
		},
		YAxis: gochart.YAxis{
			Name:           spec.YLabel,
			Range:          &gochart.ContinuousRange{Min: 0, Max: maxY},
			Ticks:          axisTicks(TicksWithin(NiceTicks(0, maxY, 6), 0, maxY)),
			GridMajorStyle: gochart.Style{StrokeColor: gridColor, StrokeWidth: 1},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "curve",
				XValues: xs,
				YValues: ys,
				Style:   gochart.Style{StrokeColor: lineColor, StrokeWidth: 2},
			},
			gochart.ContinuousSeries{
				Name:    "points",
				XValues: px,
				YValues: py,
				Style: gochart.Style{
					StrokeColor: drawing.ColorTransparent,
					DotWidth:    4,
					DotColor:    pointColor,
				},
			},
		},
	}
	return ch.Render(gochart.PNG, w)
}

func axisTicks(ticks []Tick) []gochart.Tick {
	out := make([]gochart.Tick, 0, len(ticks))
	for _, t := range ticks {
		out = append(out, gochart.Tick{Value: t.Value, Label: t.Label})
	}
	return out
}
