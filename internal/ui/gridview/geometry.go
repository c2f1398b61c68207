package gridview

import (
	"strconv"

	"github.com/andyrewlee/gridpad/internal/grid"
)

// contentSize is the area inside the border.
func (m *Model) contentSize() (int, int) {
	return max(0, m.width-2*borderSize), max(0, m.height-2*borderSize)
}

// gutterWidth is the row-number column width, separator included.
func (m *Model) gutterWidth() int {
	if !m.showRowNumbers {
		return 0
	}
	return len(strconv.Itoa(max(1, m.sheet.Rows()))) + 1
}

// cellStride is a column's width plus its separator.
func (m *Model) cellStride() int {
	return m.colWidth + 1
}

// visibleRows is the number of data rows that fit below the header.
func (m *Model) visibleRows() int {
	_, h := m.contentSize()
	return max(0, h-1)
}

// visibleCols is the number of columns that fit beside the gutter.
func (m *Model) visibleCols() int {
	w, _ := m.contentSize()
	return max(1, (w-m.gutterWidth())/m.cellStride())
}

// CellAt maps a point relative to the pane's outer box onto a sheet cell.
func (m *Model) CellAt(x, y int) (grid.Pos, bool) {
	cx, cy := x-borderSize, y-borderSize
	w, h := m.contentSize()
	if cx < 0 || cy < 1 || cx >= w || cy >= h {
		return grid.Pos{}, false
	}
	gw := m.gutterWidth()
	if cx < gw {
		return grid.Pos{}, false
	}
	p := grid.Pos{
		Row: m.rowOffset + cy - 1,
		Col: m.colOffset + (cx-gw)/m.cellStride(),
	}
	if !m.sheet.Contains(p) {
		return grid.Pos{}, false
	}
	return p, true
}

// dragTarget maps a drag point onto the nearest cell, scrolling when the
// pointer leaves the visible rows.
func (m *Model) dragTarget(x, y int) grid.Pos {
	cx, cy := x-borderSize, y-borderSize
	row := m.rowOffset + cy - 1
	col := m.colOffset
	if gw := m.gutterWidth(); cx > gw {
		col += (cx - gw) / m.cellStride()
	}
	return m.sheet.Clamp(grid.Pos{Row: row, Col: col})
}
