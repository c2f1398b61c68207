package grid

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for data files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// LoadFile reads a sheet from path. The format follows the extension:
// .json, .yaml/.yml or .csv.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sheet *Sheet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		sheet, err = ParseJSON(data)
	case ".yaml", ".yml":
		sheet, err = ParseYAML(data)
	case ".csv":
		sheet, err = ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// ParseJSON accepts an array of rows. Each row is either an array of scalars
// or an object whose keys become column headers in first-seen order.
func ParseJSON(data []byte) (*Sheet, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errors.New("expected a JSON array of rows")
	}

	var (
		headers []string
		index   = map[string]int{}
		rows    [][]any
		rowErr  error
	)
	root.ForEach(func(_, row gjson.Result) bool {
		switch {
		case row.IsArray():
			var vals []any
			row.ForEach(func(_, v gjson.Result) bool {
				vals = append(vals, ScalarOf(v))
				return true
			})
			rows = append(rows, vals)
		case row.IsObject():
			vals := make([]any, len(headers))
			row.ForEach(func(k, v gjson.Result) bool {
				col, ok := index[k.String()]
				if !ok {
					col = len(headers)
					index[k.String()] = col
					headers = append(headers, k.String())
				}
				for len(vals) <= col {
					vals = append(vals, nil)
				}
				vals[col] = ScalarOf(v)
				return true
			})
			rows = append(rows, vals)
		default:
			rowErr = fmt.Errorf("row %d: expected array or object, got %s", len(rows)+1, row.Type)
			return false
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return NewSheet(headers, rows), nil
}

// ScalarOf converts a decoded JSON value into a cell value. Nested arrays and
// objects are kept as their raw JSON text.
func ScalarOf(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return v.Num
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}

// ParseYAML accepts a sequence of sequences, or a sequence of mappings.
func ParseYAML(data []byte) (*Sheet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return NewSheet(nil, nil), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, errors.New("expected a YAML sequence of rows")
	}

	var (
		headers []string
		index   = map[string]int{}
		rows    [][]any
	)
	for i, row := range root.Content {
		switch row.Kind {
		case yaml.SequenceNode:
			vals := make([]any, 0, len(row.Content))
			for _, n := range row.Content {
				v, err := yamlScalar(n)
				if err != nil {
					return nil, fmt.Errorf("row %d: %w", i+1, err)
				}
				vals = append(vals, v)
			}
			rows = append(rows, vals)
		case yaml.MappingNode:
			vals := make([]any, len(headers))
			for j := 0; j+1 < len(row.Content); j += 2 {
				name := row.Content[j].Value
				col, ok := index[name]
				if !ok {
					col = len(headers)
					index[name] = col
					headers = append(headers, name)
				}
				for len(vals) <= col {
					vals = append(vals, nil)
				}
				v, err := yamlScalar(row.Content[j+1])
				if err != nil {
					return nil, fmt.Errorf("row %d: %w", i+1, err)
				}
				vals[col] = v
			}
			rows = append(rows, vals)
		default:
			return nil, fmt.Errorf("row %d: expected sequence or mapping", i+1)
		}
	}
	return NewSheet(headers, rows), nil
}

func yamlScalar(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: nested values are not supported", n.Line)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseCSV reads rows of text. Empty fields become empty cells and numeric
// fields become numbers.
func ParseCSV(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var rows [][]any
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		vals := make([]any, len(rec))
		for i, field := range rec {
			vals[i] = csvValue(field)
		}
		rows = append(rows, vals)
	}
	return NewSheet(nil, rows), nil
}

func csvValue(field string) any {
	if field == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return f
	}
	return field
}
