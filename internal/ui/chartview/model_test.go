package chartview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/gridpad/internal/chart"
)

func TestHoverShowsTooltip(t *testing.T) {
	m := New(chart.Default())
	m.SetSize(62, 22)

	mk := chart.Render(chart.Default(), 60, 20).Markers[3]
	m.Update(tea.MouseMotionMsg{X: mk.Col + 1, Y: mk.Row + 1})

	p, ok := m.Hovered()
	if !ok || p != (chart.Point{X: 3, Y: 20}) {
		t.Fatalf("hovered = %+v, %v", p, ok)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "x: 3 y: 20") {
		t.Fatalf("tooltip missing:\n%s", view)
	}
}

func TestLeavingHidesTooltip(t *testing.T) {
	m := New(chart.Default())
	m.SetSize(62, 22)
	mk := chart.Render(chart.Default(), 60, 20).Markers[0]

	m.Update(tea.MouseMotionMsg{X: mk.Col + 1, Y: mk.Row + 1})
	if _, ok := m.Hovered(); !ok {
		t.Fatalf("expected hover")
	}
	m.Update(tea.MouseMotionMsg{X: 0, Y: 0})
	if _, ok := m.Hovered(); ok {
		t.Fatalf("moving away should clear hover")
	}

	m.Update(tea.MouseMotionMsg{X: mk.Col + 1, Y: mk.Row + 1})
	m.ClearHover()
	if strings.Contains(ansi.Strip(m.View()), "x: ") {
		t.Fatalf("tooltip should be hidden after ClearHover")
	}
}

func TestViewSize(t *testing.T) {
	m := New(chart.Default())
	m.SetSize(62, 22)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 22 {
		t.Fatalf("expected 22 lines, got %d", len(lines))
	}
	if !strings.Contains(ansi.Strip(view), "Curved Line Chart") {
		t.Fatalf("missing title")
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 62 {
			t.Fatalf("line %d has width %d", i, w)
		}
	}

	if New(chart.Default()).View() != "" {
		t.Fatalf("unsized view should be empty")
	}
}
