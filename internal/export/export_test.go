package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andyrewlee/gridpad/internal/selection"
)

func TestRawKeepsNullsAndIgnoresKeying(t *testing.T) {
	sel := selection.Selection{selection.Empty(), selection.Populated("X"), selection.Empty(), selection.Populated("Y")}
	before, err := Raw(sel)
	if err != nil {
		t.Fatal(err)
	}
	_ = selection.Key(sel)
	after, err := Raw(sel)
	if err != nil {
		t.Fatal(err)
	}

	want := "[\n  null,\n  \"X\",\n  null,\n  \"Y\"\n]"
	if string(before) != want {
		t.Fatalf("Raw() = %q, want %q", before, want)
	}
	if string(after) != string(before) {
		t.Fatal("keying changed the raw export")
	}
}

func TestRawKeepsMarkupLiteral(t *testing.T) {
	data, err := Raw(selection.Selection{selection.Populated("<td>"), selection.Empty()})
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  \"<td>\",\n  null\n]"
	if string(data) != want {
		t.Fatalf("Raw() = %q, want %q", data, want)
	}
}

func TestRawEmpty(t *testing.T) {
	data, err := Raw(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("Raw(nil) = %q", data)
	}
}

func TestWriteRawNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	sel := selection.Selection{selection.Populated("A")}

	first, err := WriteRaw(dir, sel)
	if err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	second, err := WriteRaw(dir, selection.Selection{selection.Populated("B")})
	if err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}

	if filepath.Base(first) != "selectedCells.json" {
		t.Fatalf("first export = %s", first)
	}
	if filepath.Base(second) != "selectedCells (1).json" {
		t.Fatalf("second export = %s", second)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[\n  \"A\"\n]" {
		t.Fatalf("first export was modified: %q", data)
	}
}

func TestWriteRawCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path, err := WriteRaw(dir, selection.Selection{})
	if err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export missing: %v", err)
	}
}
