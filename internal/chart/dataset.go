// Package chart lays out the static line chart: scales, ticks, a monotone
// smooth curve, a braille rendering for the terminal and a PNG export.
package chart

// Point is one sample of the dataset.
type Point struct {
	X float64
	Y float64
}

// Margin mirrors the padding of the exported image.
type Margin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Spec describes a chart.
type Spec struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
	Margin Margin
	// Width and Height are the pixel size of the exported image.
	Width  int
	Height int
}

// Dataset is the hard-coded six-point series.
var Dataset = []Point{
	{X: 0, Y: 10},
	{X: 1, Y: 15},
	{X: 2, Y: 8},
	{X: 3, Y: 20},
	{X: 4, Y: 18},
	{X: 5, Y: 25},
}

// Default returns the chart shown in the chart pane.
func Default() Spec {
	return Spec{
		Title:  "Curved Line Chart",
		XLabel: "X Axis",
		YLabel: "Y Axis",
		Points: append([]Point(nil), Dataset...),
		Margin: Margin{Top: 40, Right: 30, Bottom: 50, Left: 50},
		Width:  600,
		Height: 400,
	}
}
