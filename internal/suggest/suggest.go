// Package suggest filters a fixed word list for the search box.
package suggest

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Mode selects how input is matched against the list.
type Mode int

const (
	// Substring keeps items containing the input, case-insensitively, in list order.
	Substring Mode = iota
	// Fuzzy ranks items by subsequence match score.
	Fuzzy
)

// ParseMode maps a config value to a Mode.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, "fuzzy") {
		return Fuzzy
	}
	return Substring
}

// Source is an immutable suggestion list.
type Source struct {
	items []string
	lower []string
	mode  Mode
}

// New returns a Source over items.
func New(items []string, mode Mode) *Source {
	s := &Source{
		items: append([]string(nil), items...),
		lower: make([]string, len(items)),
		mode:  mode,
	}
	for i, it := range items {
		s.lower[i] = strings.ToLower(it)
	}
	return s
}

// Items returns the full list.
func (s *Source) Items() []string {
	return append([]string(nil), s.items...)
}

// Filter returns the suggestions for input. An empty input matches every item.
func (s *Source) Filter(input string) []string {
	if s.mode == Fuzzy && input != "" {
		matches := fuzzy.Find(input, s.items)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m.Str)
		}
		return out
	}

	needle := strings.ToLower(input)
	out := make([]string, 0, len(s.items))
	for i, it := range s.lower {
		if strings.Contains(it, needle) {
			out = append(out, s.items[i])
		}
	}
	return out
}
