package selection

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Entry is one key/value pair of a Keyed selection.
type Entry struct {
	Key   int
	Value any
}

// Keyed maps sequential integer keys to the populated cells of a selection.
// Entries are kept in ascending key order.
type Keyed struct {
	entries []Entry
}

// Key builds the keyed form of a selection.
//
// The first populated cell is keyed leadingEmpty+1. Every empty cell is then
// dropped and the remaining cells take consecutive keys, so gaps after the
// leading run do not show up in the numbering.
func Key(cells Selection) Keyed {
	next := cells.LeadingEmpty() + 1
	entries := make([]Entry, 0, len(cells))
	for _, c := range cells {
		if c.IsEmpty() {
			continue
		}
		entries = append(entries, Entry{Key: next, Value: c.Value()})
		next++
	}
	return Keyed{entries: entries}
}

// Len returns the number of entries.
func (k Keyed) Len() int { return len(k.entries) }

// Entries returns a copy of the entries in key order.
func (k Keyed) Entries() []Entry {
	out := make([]Entry, len(k.entries))
	copy(out, k.entries)
	return out
}

// Get returns the value stored under key.
func (k Keyed) Get(key int) (any, bool) {
	for _, e := range k.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Map returns the entries as a plain map.
func (k Keyed) Map() map[int]any {
	out := make(map[int]any, len(k.entries))
	for _, e := range k.entries {
		out[e.Key] = e.Value
	}
	return out
}

// MarshalJSON encodes the selection as an object with decimal string keys in
// ascending order, e.g. {"3":"X","4":"Y"}.
func (k Keyed) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range k.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(e.Key))
		buf.WriteString(`":`)
		val, err := Encode(e.Value, "")
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Compact returns the single-line JSON form placed on the clipboard.
func (k Keyed) Compact() (string, error) {
	data, err := k.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Indented returns the two-space indented JSON form shown on screen.
func (k Keyed) Indented() (string, error) {
	data, err := k.MarshalJSON()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
