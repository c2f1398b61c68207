package layout

import "testing"

func TestLayoutModes(t *testing.T) {
	m := NewManager()

	m.Resize(160, 50)
	if m.Mode() != LayoutTwoColumn {
		t.Fatalf("expected two-column mode, got %v", m.Mode())
	}
	if !m.ShowSide() || !m.ShowConsole() {
		t.Fatalf("expected side column and console to be visible")
	}

	m.Resize(60, 40)
	if m.Mode() != LayoutOneColumn {
		t.Fatalf("expected one-column mode, got %v", m.Mode())
	}
	if m.ShowSide() || !m.Chart().Empty() || !m.Code().Empty() {
		t.Fatalf("expected side panes hidden in one-column mode")
	}

	m.Resize(60, 12)
	if m.ShowConsole() {
		t.Fatalf("expected console hidden on a short terminal")
	}
}

func TestLayoutTilesScreen(t *testing.T) {
	m := NewManager()
	m.Resize(160, 50)

	if m.Toolbar().Y != 0 || m.Help().Y != 49 {
		t.Fatalf("toolbar/help misplaced: %+v %+v", m.Toolbar(), m.Help())
	}
	if m.Search().Y+m.Search().H != m.Grid().Y {
		t.Fatalf("grid should sit under search")
	}
	if m.Grid().W+m.Chart().W != 160 {
		t.Fatalf("columns should span the width: %d + %d", m.Grid().W, m.Chart().W)
	}
	if m.Chart().Y+m.Chart().H != m.Code().Y {
		t.Fatalf("code should sit under chart")
	}
	if m.Grid().Y+m.Grid().H != m.Console().Y || m.Console().Y+m.Console().H != m.Help().Y {
		t.Fatalf("console should fill the gap above help: grid %+v console %+v", m.Grid(), m.Console())
	}
	if m.Chart().W < m.minSideWidth || m.Grid().W < m.minGridWidth {
		t.Fatalf("pane widths below minimums")
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 4, H: 3}
	if !r.Contains(10, 5) || !r.Contains(13, 7) || r.Contains(14, 5) {
		t.Fatalf("Contains mismatch")
	}
	if in := r.Inner(); in != (Rect{X: 11, Y: 6, W: 2, H: 1}) {
		t.Fatalf("Inner() = %+v", in)
	}
	if x, y := r.Local(12, 6); x != 2 || y != 1 {
		t.Fatalf("Local() = %d,%d", x, y)
	}
	if (Rect{W: 1}).Inner() != (Rect{X: 1, Y: 1}) {
		t.Fatalf("Inner should clamp to zero size")
	}
	if !(Rect{}).Empty() {
		t.Fatalf("zero rect should be empty")
	}
}
