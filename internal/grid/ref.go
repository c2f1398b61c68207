package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andyrewlee/gridpad/internal/selection"
)

// ParsePos reads an A1-style cell reference such as "B3" into a zero-based
// position.
func ParsePos(ref string) (Pos, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	i := 0
	col := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(ref) {
		return Pos{}, fmt.Errorf("invalid cell reference %q", ref)
	}
	row, err := strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return Pos{}, fmt.Errorf("invalid cell reference %q", ref)
	}
	return Pos{Row: row - 1, Col: col - 1}, nil
}

// ParseRange reads "A1:C4" or a single "B2" into a range anchored at the
// first reference.
func ParseRange(ref string) (Range, error) {
	from, to, found := strings.Cut(ref, ":")
	anchor, err := ParsePos(from)
	if err != nil {
		return Range{}, err
	}
	if !found {
		return Range{Anchor: anchor, Head: anchor}, nil
	}
	head, err := ParsePos(to)
	if err != nil {
		return Range{}, err
	}
	return Range{Anchor: anchor, Head: head}, nil
}

// Select returns the cells a drag over each range would produce, later ranges
// added as ctrl-click ranges.
func Select(sheet *Sheet, ranges ...Range) selection.Selection {
	var s Selector
	for i, r := range ranges {
		s.Begin(r.Anchor, i > 0)
		s.Extend(r.Head)
		s.Finish()
	}
	return s.Cells(sheet)
}
