package grid

import (
	"encoding/json"
	"testing"
)

func TestColumnName(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA", -1: ""}
	for in, want := range tests {
		if got := ColumnName(in); got != want {
			t.Errorf("ColumnName(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestNewSheetPadsRaggedRows(t *testing.T) {
	s := NewSheet(nil, [][]any{{"a"}, {"b", "c", "d"}})
	if s.Rows() != 2 || s.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Rows(), s.Cols())
	}
	if !s.At(Pos{Row: 0, Col: 2}).IsEmpty() {
		t.Fatal("padded cell should be empty")
	}
	if s.At(Pos{Row: 1, Col: 2}).String() != "d" {
		t.Fatalf("At(1,2) = %q", s.At(Pos{Row: 1, Col: 2}).String())
	}
	if !s.At(Pos{Row: 9, Col: 9}).IsEmpty() {
		t.Fatal("out of range cell should be empty")
	}
}

func TestHeaderFallsBackToLetters(t *testing.T) {
	s := NewSheet([]string{"Name", ""}, [][]any{{1, 2, 3}})
	if got := s.Header(0); got != "Name" {
		t.Fatalf("Header(0) = %q", got)
	}
	if got := s.Header(1); got != "B" {
		t.Fatalf("Header(1) = %q", got)
	}
	if got := s.Header(2); got != "C" {
		t.Fatalf("Header(2) = %q", got)
	}
}

func TestClamp(t *testing.T) {
	s := NewSheet(nil, [][]any{{1, 2}, {3, 4}})
	if got := s.Clamp(Pos{Row: -3, Col: 9}); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("Clamp = %+v", got)
	}
	var empty *Sheet
	if got := empty.Clamp(Pos{Row: 4, Col: 4}); got != (Pos{}) {
		t.Fatalf("Clamp on nil sheet = %+v", got)
	}
}

func TestSheetMarshalJSON(t *testing.T) {
	s := NewSheet(nil, [][]any{{"a", nil}, {1, true}})
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[["a",null],[1,true]]` {
		t.Fatalf("json = %s", data)
	}
}
