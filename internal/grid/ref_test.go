package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/andyrewlee/gridpad/internal/selection"
)

func TestParsePos(t *testing.T) {
	tests := []struct {
		ref     string
		want    Pos
		wantErr bool
	}{
		{ref: "A1", want: Pos{}},
		{ref: "b3", want: Pos{Row: 2, Col: 1}},
		{ref: "AA10", want: Pos{Row: 9, Col: 26}},
		{ref: "A0", wantErr: true},
		{ref: "12", wantErr: true},
		{ref: "C", wantErr: true},
		{ref: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePos(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePos(%q) err = %v, wantErr %v", tt.ref, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParsePos(%q) = %+v, want %+v", tt.ref, got, tt.want)
		}
	}
}

func TestColumnNameRoundTrip(t *testing.T) {
	for _, col := range []int{0, 25, 26, 51, 52, 701, 702} {
		p, err := ParsePos(ColumnName(col) + "1")
		if err != nil || p.Col != col {
			t.Fatalf("col %d: got %+v, %v", col, p, err)
		}
	}
}

func TestSelectRanges(t *testing.T) {
	sheet := SampleSheet()
	first, err := ParseRange("A1:B2")
	if err != nil {
		t.Fatal(err)
	}
	got := Select(sheet, first)
	want := []any{"Apple", "Red", "Banana", "Yellow"}
	if diff := cmp.Diff(want, values(got)); diff != "" {
		t.Fatalf("Select mismatch (-want +got):\n%s", diff)
	}

	// A second range leaves a gap of empties between the two.
	second, err := ParseRange("B4")
	if err != nil {
		t.Fatal(err)
	}
	got = Select(sheet, first, second)
	want = []any{"Apple", "Red", "Banana", "Yellow", nil, nil, nil, "Orange"}
	if diff := cmp.Diff(want, values(got), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Select with gap mismatch (-want +got):\n%s", diff)
	}
}

func values(sel selection.Selection) []any {
	out := make([]any, len(sel))
	for i, c := range sel {
		out[i] = c.Value()
	}
	return out
}
