package compositor

import (
	"image/color"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderStacksLayers(t *testing.T) {
	var s Screen
	out := s.Render(6, 2,
		NewLayer("aaaaaa\nbbbbbb", 0, 0),
		NewLayer("XY", 2, 1),
	)
	lines := strings.Split(strings.TrimRight(ansi.Strip(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if lines[0] != "aaaaaa" || lines[1] != "bbXYbb" {
		t.Fatalf("unexpected frame %q", lines)
	}
}

func TestRenderClipsAndResizes(t *testing.T) {
	var s Screen
	s.Render(4, 1, NewLayer("abcdefgh", 0, 0))
	out := ansi.Strip(s.Render(3, 1, NewLayer("abcdefgh", 1, 0), nil))
	if strings.TrimRight(out, "\n") != " ab" {
		t.Fatalf("unexpected clipped frame %q", out)
	}
}

func TestLayerKeepsStyles(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hi")
	var s Screen
	out := s.Render(2, 1, NewLayer(styled, 0, 0))
	if strings.TrimRight(ansi.Strip(out), "\n") != "hi" {
		t.Fatalf("plain text lost: %q", out)
	}
	if out == "hi" {
		t.Fatalf("expected styling escapes in %q", out)
	}
}

func TestLayerSize(t *testing.T) {
	w, h := NewLayer("ab\nabcd", 0, 0).Size()
	if w != 4 || h != 2 {
		t.Fatalf("Size() = %d,%d", w, h)
	}
	if w, h := NewLayer("", 0, 0).Size(); w != 0 || h != 0 {
		t.Fatalf("empty layer Size() = %d,%d", w, h)
	}
}

func TestApplySGR(t *testing.T) {
	params := ansi.Params{ansi.Param(1), ansi.Param(38), ansi.Param(5), ansi.Param(196)}
	style := applySGR(uv.Style{}, params)
	if style.Attrs&uv.AttrBold == 0 {
		t.Fatalf("bold not applied")
	}
	if style.Fg != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("fg = %#v", style.Fg)
	}
	if reset := applySGR(style, ansi.Params{ansi.Param(0)}); reset.Fg != nil || reset.Attrs != 0 {
		t.Fatalf("reset did not clear style: %#v", reset)
	}
}

func TestIndexedColor(t *testing.T) {
	if indexedColor(232) != (color.RGBA{R: 8, G: 8, B: 8, A: 255}) {
		t.Fatalf("grayscale ramp mismatch")
	}
	if indexedColor(300) != nil || indexedColor(-1) != nil {
		t.Fatalf("out of range index should be nil")
	}
}
