// Package compositor stacks styled pane strings onto one screen-sized canvas
// so popups can be drawn over the panes beneath them.
package compositor

import (
	"image/color"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Layer is a styled ANSI string placed at a screen position.
type Layer struct {
	x, y  int
	lines []string
}

var _ uv.Drawable = (*Layer)(nil)

// NewLayer places content with its top-left corner at (x, y).
func NewLayer(content string, x, y int) *Layer {
	if content == "" {
		return &Layer{x: x, y: y}
	}
	return &Layer{x: x, y: y, lines: strings.Split(content, "\n")}
}

// Size returns the layer's width and height in cells.
func (l *Layer) Size() (int, int) {
	w := 0
	for _, line := range l.lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w, len(l.lines)
}

// Draw writes the layer's cells onto the screen, clipped to r.
func (l *Layer) Draw(screen uv.Screen, r uv.Rectangle) {
	p := ansi.GetParser()
	defer ansi.PutParser(p)

	for i, line := range l.lines {
		y := l.y + i
		if y < r.Min.Y || y >= r.Max.Y {
			continue
		}
		var style uv.Style
		var state byte
		x := l.x
		for len(line) > 0 {
			seq, width, n, newState := ansi.DecodeSequence(line, state, p)
			if n == 0 {
				break
			}
			if width == 0 {
				if ansi.Cmd(p.Command()).Final() == 'm' {
					style = applySGR(style, p.Params())
				}
			} else {
				if x >= r.Min.X && x < r.Max.X {
					screen.SetCell(x, y, &uv.Cell{Content: seq, Style: style, Width: width})
				}
				x += width
			}
			line = line[n:]
			state = newState
		}
	}
}

// applySGR folds one SGR sequence into style.
func applySGR(style uv.Style, params ansi.Params) uv.Style {
	if len(params) == 0 {
		return uv.Style{}
	}
	for i := 0; i < len(params); i++ {
		p, _, _ := params.Param(i, 0)
		switch {
		case p == 0:
			style = uv.Style{}
		case p == 1:
			style.Attrs |= uv.AttrBold
		case p == 2:
			style.Attrs |= uv.AttrFaint
		case p == 3:
			style.Attrs |= uv.AttrItalic
		case p == 4:
			style.Underline = uv.UnderlineSingle
		case p == 7:
			style.Attrs |= uv.AttrReverse
		case p == 9:
			style.Attrs |= uv.AttrStrikethrough
		case p == 22:
			style.Attrs &^= uv.AttrBold | uv.AttrFaint
		case p == 23:
			style.Attrs &^= uv.AttrItalic
		case p == 24:
			style.Underline = uv.UnderlineNone
		case p == 27:
			style.Attrs &^= uv.AttrReverse
		case p == 29:
			style.Attrs &^= uv.AttrStrikethrough
		case p >= 30 && p <= 37:
			style.Fg = indexedColor(p - 30)
		case p == 38, p == 48:
			c, used := extendedColor(params, i)
			if p == 38 {
				style.Fg = c
			} else {
				style.Bg = c
			}
			i += used
		case p == 39:
			style.Fg = nil
		case p >= 40 && p <= 47:
			style.Bg = indexedColor(p - 40)
		case p == 49:
			style.Bg = nil
		case p >= 90 && p <= 97:
			style.Fg = indexedColor(p - 90 + 8)
		case p >= 100 && p <= 107:
			style.Bg = indexedColor(p - 100 + 8)
		}
	}
	return style
}

// extendedColor decodes the 5;n or 2;r;g;b tail after a 38 or 48. It
// returns the color and how many extra params it consumed.
func extendedColor(params ansi.Params, i int) (color.Color, int) {
	if i+2 >= len(params) {
		return nil, 0
	}
	mode, _, _ := params.Param(i+1, 0)
	switch {
	case mode == 5:
		idx, _, _ := params.Param(i+2, 0)
		return indexedColor(idx), 2
	case mode == 2 && i+4 < len(params):
		r, _, _ := params.Param(i+2, 0)
		g, _, _ := params.Param(i+3, 0)
		b, _, _ := params.Param(i+4, 0)
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, 4
	}
	return nil, 0
}

var basicPalette = [16]color.RGBA{
	{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
	{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
	{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
	{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
}

// indexedColor resolves a 256-color palette index.
func indexedColor(idx int) color.Color {
	switch {
	case idx < 0:
		return nil
	case idx < 16:
		return basicPalette[idx]
	case idx < 232:
		idx -= 16
		level := func(v int) uint8 {
			if v == 0 {
				return 0
			}
			return uint8(55 + v*40)
		}
		return color.RGBA{R: level(idx / 36), G: level(idx / 6 % 6), B: level(idx % 6), A: 255}
	case idx < 256:
		g := uint8(8 + (idx-232)*10)
		return color.RGBA{R: g, G: g, B: g, A: 255}
	}
	return nil
}
