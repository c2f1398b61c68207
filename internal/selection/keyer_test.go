package selection

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cells(vals ...any) Selection {
	out := make(Selection, len(vals))
	for i, v := range vals {
		out[i] = Populated(v)
	}
	return out
}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		in    Selection
		want  map[int]any
		json  string
		first int
	}{
		{
			name: "no empties starts at one",
			in:   cells("A", "B", "C"),
			want: map[int]any{1: "A", 2: "B", 3: "C"},
			json: `{"1":"A","2":"B","3":"C"}`,
		},
		{
			name: "leading run offsets the first key",
			in:   cells(nil, nil, "X", nil, "Y"),
			want: map[int]any{3: "X", 4: "Y"},
			json: `{"3":"X","4":"Y"}`,
		},
		{
			name: "all empty",
			in:   cells(nil, nil),
			want: map[int]any{},
			json: `{}`,
		},
		{
			name: "empty selection",
			in:   nil,
			want: map[int]any{},
			json: `{}`,
		},
		{
			name: "single cell",
			in:   cells("Z"),
			want: map[int]any{1: "Z"},
			json: `{"1":"Z"}`,
		},
		{
			name: "inner gaps do not break numbering",
			in:   cells("A", nil, nil, "B", nil, "C"),
			want: map[int]any{1: "A", 2: "B", 3: "C"},
			json: `{"1":"A","2":"B","3":"C"}`,
		},
		{
			name: "mixed scalar types",
			in:   cells(nil, 1.5, true, "x"),
			want: map[int]any{2: 1.5, 3: true, 4: "x"},
			json: `{"2":1.5,"3":true,"4":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.in)
			if diff := cmp.Diff(tt.want, got.Map()); diff != "" {
				t.Fatalf("Key() mismatch (-want +got):\n%s", diff)
			}
			data, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.json {
				t.Fatalf("json = %s, want %s", data, tt.json)
			}
		})
	}
}

func TestKeyOrdersNumericKeysNumerically(t *testing.T) {
	in := make(Selection, 0, 12)
	for i := 0; i < 12; i++ {
		in = append(in, Populated(i))
	}
	got, err := Key(in).Compact()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"1":0,"2":1,"3":2,"4":3,"5":4,"6":5,"7":6,"8":7,"9":8,"10":9,"11":10,"12":11}`
	if got != want {
		t.Fatalf("Compact() = %s\nwant      %s", got, want)
	}
}

func TestIndented(t *testing.T) {
	got, err := Key(cells(nil, "X", "Y")).Indented()
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"2\": \"X\",\n  \"3\": \"Y\"\n}"
	if got != want {
		t.Fatalf("Indented() = %q, want %q", got, want)
	}
}

func TestCompactKeepsMarkupLiteral(t *testing.T) {
	got, err := Key(cells("<b>", "a & b")).Compact()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"1":"<b>","2":"a & b"}`
	if got != want {
		t.Fatalf("Compact() = %q, want %q", got, want)
	}
}

func TestEntriesAndGet(t *testing.T) {
	k := Key(cells(nil, "X", nil, "Y"))
	want := []Entry{{Key: 2, Value: "X"}, {Key: 3, Value: "Y"}}
	if diff := cmp.Diff(want, k.Entries()); diff != "" {
		t.Fatalf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := k.Get(3); !ok || v != "Y" {
		t.Fatalf("Get(3) = %v, %v", v, ok)
	}
	if _, ok := k.Get(1); ok {
		t.Fatal("Get(1) should miss")
	}
	if k.Len() != 2 {
		t.Fatalf("Len() = %d", k.Len())
	}
}

func TestRawSelectionKeepsNulls(t *testing.T) {
	in := cells(nil, "X", nil, 2.0)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[null,"X",null,2]` {
		t.Fatalf("raw json = %s", data)
	}

	// Keying must not mutate the raw selection.
	_ = Key(in)
	if !in[0].IsEmpty() || in[1].Value() != "X" || len(in) != 4 {
		t.Fatalf("raw selection changed after keying: %v", in)
	}
}

func TestCellUnmarshal(t *testing.T) {
	var got Selection
	if err := json.Unmarshal([]byte(`[null,"a",3,false]`), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || !got[0].IsEmpty() || got[1].String() != "a" || got[2].String() != "3" || got[3].String() != "false" {
		t.Fatalf("unexpected cells: %#v", got)
	}
	if got.LeadingEmpty() != 1 {
		t.Fatalf("LeadingEmpty() = %d", got.LeadingEmpty())
	}
}
