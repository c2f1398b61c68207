package gridview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/gridpad/internal/config"
	"github.com/andyrewlee/gridpad/internal/grid"
	"github.com/andyrewlee/gridpad/internal/keymap"
	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/selection"
)

// Layout with the sample sheet, width 60, column width 10, row numbers on:
// border 1, gutter 2, so column c starts at x = 3 + 11*c and row r sits at
// y = 2 + r (the header takes y = 1).
func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(grid.SampleSheet(), config.GridConfig{ColumnWidth: 10, ShowRowNumbers: true}, keymap.New(config.KeyMapConfig{}))
	m.SetSize(60, 12)
	return m
}

func cellX(col int) int { return 3 + 11*col }
func cellY(row int) int { return 2 + row }

func stoppedCells(t *testing.T, cmd tea.Cmd) selection.Selection {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a selection-stop command")
	}
	msg, ok := cmd().(messages.SelectionStopped)
	if !ok {
		t.Fatalf("expected SelectionStopped")
	}
	return msg.Cells
}

func texts(sel selection.Selection) []string {
	out := make([]string, len(sel))
	for i, c := range sel {
		if c.IsEmpty() {
			out[i] = "<empty>"
			continue
		}
		out[i] = c.String()
	}
	return out
}

func TestCellAt(t *testing.T) {
	m := newTestModel(t)
	tests := []struct {
		name string
		x, y int
		want grid.Pos
		ok   bool
	}{
		{"first cell", cellX(0), cellY(0), grid.Pos{}, true},
		{"second column", cellX(1), cellY(2), grid.Pos{Row: 2, Col: 1}, true},
		{"last char of column", cellX(1) - 1, cellY(0), grid.Pos{Row: 0, Col: 0}, true},
		{"header row", cellX(0), 1, grid.Pos{}, false},
		{"gutter", 1, cellY(0), grid.Pos{}, false},
		{"border", 0, 0, grid.Pos{}, false},
		{"below sheet", cellX(0), cellY(8), grid.Pos{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.CellAt(tt.x, tt.y)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Fatalf("CellAt(%d,%d) = %+v,%v want %+v,%v", tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDragEmitsOnlyOnRelease(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.MouseClickMsg{X: cellX(0), Y: cellY(0), Button: tea.MouseLeft})
	if cmd != nil {
		t.Fatalf("press should not emit")
	}
	for _, y := range []int{cellY(0), cellY(1)} {
		_, cmd = m.Update(tea.MouseMotionMsg{X: cellX(1), Y: y, Button: tea.MouseLeft})
		if cmd != nil {
			t.Fatalf("drag step should not emit")
		}
	}
	if !m.Dragging() {
		t.Fatalf("expected drag in progress")
	}

	_, cmd = m.Update(tea.MouseReleaseMsg{X: cellX(1), Y: cellY(1), Button: tea.MouseLeft})
	got := texts(stoppedCells(t, cmd))
	want := []string{"Apple", "Red", "Banana", "Yellow"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("cells = %v, want %v", got, want)
	}

	_, cmd = m.Update(tea.MouseReleaseMsg{X: cellX(1), Y: cellY(1), Button: tea.MouseLeft})
	if cmd != nil {
		t.Fatalf("second release should not emit")
	}
}

func TestEndDragDoesNotEmit(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.MouseClickMsg{X: cellX(0), Y: cellY(0), Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: cellX(1), Y: cellY(1), Button: tea.MouseLeft})

	m.EndDrag()
	if m.Dragging() {
		t.Fatalf("drag still in progress")
	}
	if !m.HasSelection() {
		t.Fatalf("ranges should survive EndDrag")
	}
	_, cmd := m.Update(tea.MouseReleaseMsg{X: cellX(1), Y: cellY(1), Button: tea.MouseLeft})
	if cmd != nil {
		t.Fatalf("release after EndDrag should not emit")
	}
}

func TestCtrlClickAddsRangeWithGaps(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.MouseClickMsg{X: cellX(0), Y: cellY(0), Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: cellX(0), Y: cellY(0), Button: tea.MouseLeft})
	m.Update(tea.MouseClickMsg{X: cellX(1), Y: cellY(3), Button: tea.MouseLeft, Mod: tea.ModCtrl})
	_, cmd := m.Update(tea.MouseReleaseMsg{X: cellX(1), Y: cellY(3), Button: tea.MouseLeft})

	cells := stoppedCells(t, cmd)
	if len(cells) != 8 {
		t.Fatalf("expected the 4x2 bounding box, got %d cells", len(cells))
	}
	out, err := selection.Key(cells).Compact()
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	if out != `{"1":"Apple","2":"Orange"}` {
		t.Fatalf("keyed = %s", out)
	}
	if len(m.Ranges()) != 2 {
		t.Fatalf("expected two ranges, got %d", len(m.Ranges()))
	}
}

func TestRightClickIgnored(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.MouseClickMsg{X: cellX(0), Y: cellY(0), Button: tea.MouseRight})
	if cmd != nil || m.HasSelection() {
		t.Fatalf("right click should not select")
	}
}

func TestKeyboardSelection(t *testing.T) {
	m := newTestModel(t)
	m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := texts(stoppedCells(t, cmd)); len(got) != 1 || got[0] != "Apple" {
		t.Fatalf("first move should select the first cell, got %v", got)
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModShift})
	if got := texts(stoppedCells(t, cmd)); strings.Join(got, ",") != "Apple,Banana" {
		t.Fatalf("extend down = %v", got)
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := texts(stoppedCells(t, cmd)); strings.Join(got, ",") != "Yellow" {
		t.Fatalf("move right = %v", got)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.HasSelection() {
		t.Fatalf("esc should clear the selection")
	}
}

func TestKeysIgnoredWhenBlurred(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown}); cmd != nil {
		t.Fatalf("blurred grid should ignore keys")
	}
}

func TestWheelScrolls(t *testing.T) {
	m := newTestModel(t)
	m.SetSize(60, 6)

	m.Update(tea.MouseWheelMsg{X: cellX(0), Y: cellY(0), Button: tea.MouseWheelDown})
	p, ok := m.CellAt(cellX(0), cellY(0))
	if !ok || p.Row != 1 {
		t.Fatalf("after scroll first visible row = %+v (%v)", p, ok)
	}
	m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if p, _ := m.CellAt(cellX(0), cellY(0)); p.Row != 0 {
		t.Fatalf("scroll up should return to the top, got %+v", p)
	}
}

func TestSetSheetClearsSelection(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.MouseClickMsg{X: cellX(0), Y: cellY(0), Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{Button: tea.MouseLeft})

	m.SetSheet(grid.NewSheet(nil, [][]any{{"x"}}))
	if m.HasSelection() || len(m.Selected()) != 0 {
		t.Fatalf("selection should clear on reload")
	}
	if m.Sheet().Rows() != 1 {
		t.Fatalf("sheet not replaced")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	plain := ansi.Strip(view)
	for _, want := range []string{"Fruit", "Apple", "Grapes", "Total"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("view missing %q:\n%s", want, plain)
		}
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 60 {
			t.Fatalf("line %d width %d", i, w)
		}
	}
}
