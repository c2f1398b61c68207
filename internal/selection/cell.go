// Package selection turns a grid selection into the keyed form used for
// clipboard export and keeps the most recent result for later copy events.
package selection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Cell is one grid position. The zero Cell is empty.
type Cell struct {
	value any
	ok    bool
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Populated returns a cell holding v. A nil v yields an empty cell.
func Populated(v any) Cell {
	if v == nil {
		return Cell{}
	}
	return Cell{value: v, ok: true}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return !c.ok }

// Value returns the held value, or nil for an empty cell.
func (c Cell) Value() any { return c.value }

// String returns the display text of the cell.
func (c Cell) String() string {
	if !c.ok {
		return ""
	}
	switch v := c.value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON encodes an empty cell as null and a populated cell as its value.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.ok {
		return []byte("null"), nil
	}
	return Encode(c.value, "")
}

// UnmarshalJSON decodes null as an empty cell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Populated(v)
	return nil
}

// Selection is an ordered run of cells in row-major traversal order.
type Selection []Cell

// LeadingEmpty counts the empty cells before the first populated one.
func (s Selection) LeadingEmpty() int {
	n := 0
	for _, c := range s {
		if !c.IsEmpty() {
			break
		}
		n++
	}
	return n
}

// Encode marshals v like json.Marshal but leaves <, > and & unescaped. A
// non-empty indent selects indented output.
func Encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
