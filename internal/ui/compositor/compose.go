package compositor

import "charm.land/lipgloss/v2"

// Screen composes layers, later layers on top, onto a reusable canvas.
type Screen struct {
	canvas *lipgloss.Canvas
}

// Render draws layers onto a width x height canvas and returns the frame.
func (s *Screen) Render(width, height int, layers ...*Layer) string {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	if s.canvas == nil {
		s.canvas = lipgloss.NewCanvas(width, height)
	} else if s.canvas.Width() != width || s.canvas.Height() != height {
		s.canvas.Resize(width, height)
	}
	s.canvas.Clear()
	for _, l := range layers {
		if l != nil {
			s.canvas.Compose(l)
		}
	}
	return s.canvas.Render()
}
