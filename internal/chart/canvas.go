package chart

// brailleBits maps a dot at (x%2, y%4) inside a cell to its Unicode bit.
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a character grid where each cell holds a 2x4 block of braille
// dots. Text written over a cell replaces its dots.
type Canvas struct {
	cols, rows int
	dots       []rune
	text       []rune
}

// NewCanvas allocates a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Canvas{
		cols: cols,
		rows: rows,
		dots: make([]rune, cols*rows),
		text: make([]rune, cols*rows),
	}
}

// PixelSize returns the dot resolution.
func (c *Canvas) PixelSize() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Set turns on the dot at pixel (x, y). Out of range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	c.dots[(y/4)*c.cols+x/2] |= brailleBits[x%2][y%4]
}

// Line draws a straight line between two pixels.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Put writes a rune over the cell at (col, row).
func (c *Canvas) Put(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.text[row*c.cols+col] = r
}

// Text writes s starting at (col, row), clipped at the right edge.
func (c *Canvas) Text(col, row int, s string) {
	for _, r := range s {
		c.Put(col, row, r)
		col++
	}
}

// Lines renders the canvas, one string per row. Empty cells are spaces.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	buf := make([]rune, c.cols)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			switch {
			case c.text[i] != 0:
				buf[col] = c.text[i]
			case c.dots[i] != 0:
				buf[col] = 0x2800 + c.dots[i]
			default:
				buf[col] = ' '
			}
		}
		out[row] = string(buf)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
