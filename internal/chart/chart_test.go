package chart

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestLinearMapAndInvert(t *testing.T) {
	s := NewLinear(0, 5, 0, 100)
	require.InDelta(t, 40, s.Map(2), 1e-9)
	require.InDelta(t, 2, s.Invert(40), 1e-9)

	flipped := NewLinear(0, 25, 200, 0)
	require.InDelta(t, 200, flipped.Map(0), 1e-9)
	require.InDelta(t, 0, flipped.Map(25), 1e-9)

	require.InDelta(t, 5, NewLinear(3, 3, 0, 10).Map(3), 1e-9)
}

func TestExtents(t *testing.T) {
	lo, hi := ExtentX(Dataset)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 5.0, hi)
	require.Equal(t, 25.0, MaxY(Dataset))
	require.Equal(t, 0.0, MaxY(nil))
}

func TestNiceTicks(t *testing.T) {
	ticks := NiceTicks(0, 25, 5)
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	require.Equal(t, []string{"0", "5", "10", "15", "20", "25"}, labels)

	within := TicksWithin(NiceTicks(0, 23, 5), 0, 23)
	for _, tk := range within {
		require.LessOrEqual(t, tk.Value, 23.0)
	}

	require.Nil(t, NiceTicks(0, 1, 1))
	require.Equal(t, "2.5", FormatTick(2.5))
	require.Equal(t, "0", FormatTick(-1e-12))
}

func TestMonotonePassesThroughSamples(t *testing.T) {
	m := NewMonotone(Dataset)
	for _, p := range Dataset {
		require.InDelta(t, p.Y, m.At(p.X), 1e-9)
	}
	require.Equal(t, 10.0, m.At(-3))
	require.Equal(t, 25.0, m.At(99))
}

func TestMonotoneStaysBetweenNeighbours(t *testing.T) {
	m := NewMonotone(Dataset)
	for i := 0; i+1 < len(Dataset); i++ {
		a, b := Dataset[i], Dataset[i+1]
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		for k := 1; k < 50; k++ {
			x := a.X + (b.X-a.X)*float64(k)/50
			y := m.At(x)
			require.GreaterOrEqual(t, y, lo-1e-9, "x=%v", x)
			require.LessOrEqual(t, y, hi+1e-9, "x=%v", x)
		}
	}
}

func TestMonotoneDegenerateInputs(t *testing.T) {
	require.Equal(t, 0.0, NewMonotone(nil).At(1))
	require.Equal(t, 7.0, NewMonotone([]Point{{X: 1, Y: 7}}).At(3))

	line := NewMonotone([]Point{{X: 0, Y: 0}, {X: 2, Y: 4}})
	require.InDelta(t, 2, line.At(1), 1e-9)

	xs, ys := line.Sample(3)
	require.Equal(t, []float64{0, 1, 2}, xs)
	require.InDeltaSlice(t, []float64{0, 2, 4}, ys, 1e-9)
}

func TestCanvasBraille(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	c.Set(99, 99)
	c.Put(1, 0, '●')
	require.Equal(t, []string{string(rune(0x2800 + 0x01 + 0x80)) + "●"}, c.Lines())

	w, h := c.PixelSize()
	require.Equal(t, 4, w)
	require.Equal(t, 4, h)
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Line(0, 0, 3, 0)
	full := string(rune(0x2800 + 0x01 + 0x08))
	require.Equal(t, []string{full + full}, c.Lines())
}

func TestRenderFrame(t *testing.T) {
	spec := Default()
	f := Render(spec, 60, 20)

	require.Len(t, f.Lines, 20)
	for i, line := range f.Lines {
		require.Equal(t, 60, utf8.RuneCountInString(line), "line %d", i)
	}
	require.Contains(t, f.Lines[0], "Curved Line Chart")
	require.Contains(t, f.Lines[1], "Y Axis")
	require.Contains(t, f.Lines[19], "X Axis")
	require.Contains(t, f.Lines[17], "└")

	require.Len(t, f.Markers, len(Dataset))
	for _, m := range f.Markers {
		line := []rune(f.Lines[m.Row])
		require.Equal(t, '●', line[m.Col])
	}

	// The highest point sits above the lowest one.
	var low, high Marker
	for _, m := range f.Markers {
		switch m.Point.Y {
		case 8:
			low = m
		case 25:
			high = m
		}
	}
	require.Less(t, high.Row, low.Row)
}

func TestRenderTooSmall(t *testing.T) {
	f := Render(Default(), 10, 3)
	require.Len(t, f.Lines, 3)
	require.Empty(t, f.Markers)
	require.Empty(t, Render(Default(), 0, 0).Lines)
}

func TestMarkerAtAndTooltip(t *testing.T) {
	f := Render(Default(), 60, 20)
	m := f.Markers[3]

	got, ok := f.MarkerAt(m.Col+1, m.Row)
	require.True(t, ok)
	require.Equal(t, m.Point, got.Point)

	_, ok = f.MarkerAt(m.Col, m.Row+5)
	require.False(t, ok)

	require.Equal(t, "x: 3 y: 20", Tooltip(m.Point))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, Default()))
	require.True(t, strings.HasPrefix(buf.String(), "\x89PNG"))

	spec := Default()
	spec.Points = spec.Points[:1]
	require.Error(t, WritePNG(&buf, spec))
}
