package grid

import "github.com/andyrewlee/gridpad/internal/selection"

// Range is a rectangle spanned by an anchor and the moving head.
type Range struct {
	Anchor Pos
	Head   Pos
}

// Bounds returns the normalized corners of the range.
func (r Range) Bounds() (top, left, bottom, right int) {
	top, bottom = r.Anchor.Row, r.Head.Row
	if top > bottom {
		top, bottom = bottom, top
	}
	left, right = r.Anchor.Col, r.Head.Col
	if left > right {
		left, right = right, left
	}
	return top, left, bottom, right
}

// Contains reports whether p lies inside the range.
func (r Range) Contains(p Pos) bool {
	top, left, bottom, right := r.Bounds()
	return p.Row >= top && p.Row <= bottom && p.Col >= left && p.Col <= right
}

// Selector tracks one or more selected ranges. The last range is active and
// is the one extended by drags and keyboard moves.
type Selector struct {
	ranges   []Range
	dragging bool
}

// Begin starts a new range at p. Without additive the previous ranges are
// discarded.
func (s *Selector) Begin(p Pos, additive bool) {
	if !additive {
		s.ranges = s.ranges[:0]
	}
	s.ranges = append(s.ranges, Range{Anchor: p, Head: p})
	s.dragging = true
}

// Extend moves the head of the active range to p.
func (s *Selector) Extend(p Pos) {
	if len(s.ranges) == 0 {
		s.ranges = append(s.ranges, Range{Anchor: p, Head: p})
		return
	}
	s.ranges[len(s.ranges)-1].Head = p
}

// Finish ends a drag. It reports whether a drag was in progress.
func (s *Selector) Finish() bool {
	was := s.dragging
	s.dragging = false
	return was
}

// Dragging reports whether a mouse drag is in progress.
func (s *Selector) Dragging() bool { return s.dragging }

// Clear removes every range.
func (s *Selector) Clear() {
	s.ranges = nil
	s.dragging = false
}

// Empty reports whether nothing is selected.
func (s *Selector) Empty() bool { return len(s.ranges) == 0 }

// Ranges returns a copy of the selected ranges.
func (s *Selector) Ranges() []Range {
	return append([]Range(nil), s.ranges...)
}

// Cursor returns the head of the active range.
func (s *Selector) Cursor() (Pos, bool) {
	if len(s.ranges) == 0 {
		return Pos{}, false
	}
	return s.ranges[len(s.ranges)-1].Head, true
}

// Contains reports whether any range covers p.
func (s *Selector) Contains(p Pos) bool {
	for _, r := range s.ranges {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of all ranges.
func (s *Selector) Bounds() (top, left, bottom, right int, ok bool) {
	for i, r := range s.ranges {
		t, l, b, rt := r.Bounds()
		if i == 0 {
			top, left, bottom, right = t, l, b, rt
			continue
		}
		top = min(top, t)
		left = min(left, l)
		bottom = max(bottom, b)
		right = max(right, rt)
	}
	return top, left, bottom, right, len(s.ranges) > 0
}

// Cells walks the bounding box of the selection in row-major order. Positions
// outside every range, or outside the sheet, come back empty.
func (s *Selector) Cells(sheet *Sheet) selection.Selection {
	top, left, bottom, right, ok := s.Bounds()
	if !ok {
		return selection.Selection{}
	}
	out := make(selection.Selection, 0, (bottom-top+1)*(right-left+1))
	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			p := Pos{Row: r, Col: c}
			if s.Contains(p) {
				out = append(out, sheet.At(p))
			} else {
				out = append(out, selection.Empty())
			}
		}
	}
	return out
}
