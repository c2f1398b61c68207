// Package grid holds the read-only sheet shown in the grid pane and the
// multi-range selection made over it.
package grid

import (
	"encoding/json"

	"github.com/andyrewlee/gridpad/internal/selection"
)

// Pos addresses one cell by zero-based row and column.
type Pos struct {
	Row int
	Col int
}

// Sheet is a rectangular table of cells. Ragged input rows are padded with
// empty cells.
type Sheet struct {
	headers []string
	rows    [][]selection.Cell
	cols    int
}

// NewSheet builds a sheet from raw values. nil values become empty cells.
func NewSheet(headers []string, rows [][]any) *Sheet {
	s := &Sheet{headers: append([]string(nil), headers...)}
	s.cols = len(headers)
	for _, r := range rows {
		if len(r) > s.cols {
			s.cols = len(r)
		}
	}
	s.rows = make([][]selection.Cell, len(rows))
	for i, r := range rows {
		row := make([]selection.Cell, s.cols)
		for j, v := range r {
			row[j] = selection.Populated(v)
		}
		s.rows[i] = row
	}
	return s
}

// Rows returns the number of rows.
func (s *Sheet) Rows() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Cols returns the number of columns.
func (s *Sheet) Cols() int {
	if s == nil {
		return 0
	}
	return s.cols
}

// At returns the cell at p, or an empty cell when p is out of range.
func (s *Sheet) At(p Pos) selection.Cell {
	if !s.Contains(p) {
		return selection.Empty()
	}
	return s.rows[p.Row][p.Col]
}

// Contains reports whether p lies inside the sheet.
func (s *Sheet) Contains(p Pos) bool {
	return s != nil && p.Row >= 0 && p.Col >= 0 && p.Row < len(s.rows) && p.Col < s.cols
}

// Header returns the label of column col: the loaded header when present,
// spreadsheet letters otherwise.
func (s *Sheet) Header(col int) string {
	if s != nil && col >= 0 && col < len(s.headers) && s.headers[col] != "" {
		return s.headers[col]
	}
	return ColumnName(col)
}

// Clamp returns p moved inside the sheet bounds.
func (s *Sheet) Clamp(p Pos) Pos {
	if s.Rows() == 0 || s.Cols() == 0 {
		return Pos{}
	}
	p.Row = max(0, min(p.Row, s.Rows()-1))
	p.Col = max(0, min(p.Col, s.Cols()-1))
	return p
}

// MarshalJSON encodes the sheet data as an array of rows.
func (s *Sheet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.rows)
}

// ColumnName returns the spreadsheet letter label for a zero-based column:
// A..Z, AA..AZ, BA...
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	var buf []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}

// SampleSheet is shown when no data file is configured.
func SampleSheet() *Sheet {
	return NewSheet(
		[]string{"Fruit", "Color", "Qty", "Price", "Organic"},
		[][]any{
			{"Apple", "Red", 12, 0.5, true},
			{"Banana", "Yellow", 30, 0.25, false},
			{"Orange", nil, 8, 0.75, true},
			{"Mango", "Orange", nil, 1.5, false},
			{"Grapes", "Green", 250, 0.02, nil},
			{"Kiwi", "Brown", 5, 0.6, true},
			{nil, nil, nil, nil, nil},
			{"Total", nil, 305, nil, nil},
		},
	)
}
