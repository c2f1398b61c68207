package suggest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var fruits = []string{"Apple", "Banana", "Orange", "Mango", "Grapes"}

func TestSubstringFilter(t *testing.T) {
	s := New(fruits, Substring)
	tests := []struct {
		in   string
		want []string
	}{
		{"", fruits},
		{"an", []string{"Banana", "Orange", "Mango"}},
		{"AN", []string{"Banana", "Orange", "Mango"}},
		{"ap", []string{"Apple", "Grapes"}},
		{"kiwi", []string{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, s.Filter(tt.in)); diff != "" {
			t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFuzzyFilter(t *testing.T) {
	s := New(fruits, Fuzzy)
	got := s.Filter("mgo")
	if len(got) == 0 || got[0] != "Mango" {
		t.Fatalf("Filter(mgo) = %v, want Mango first", got)
	}
	if diff := cmp.Diff(fruits, s.Filter("")); diff != "" {
		t.Fatalf("empty input should list everything (-want +got):\n%s", diff)
	}
}

func TestItemsIsACopy(t *testing.T) {
	s := New(fruits, Substring)
	items := s.Items()
	items[0] = "Changed"
	if s.Items()[0] != "Apple" {
		t.Fatal("Items must not expose internal storage")
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("FUZZY") != Fuzzy || ParseMode("substring") != Substring || ParseMode("") != Substring {
		t.Fatal("ParseMode mismatch")
	}
}
